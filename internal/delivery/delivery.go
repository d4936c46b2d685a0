// Package delivery defines the contract every transport implementation
// satisfies so the application can run them uniformly.
package delivery

import "context"

// Delivery is a transport serving the application, e.g. the HTTP server.
type Delivery interface {
	// Serve runs the transport until it fails or is shut down.
	Serve(ctx context.Context) error
}
