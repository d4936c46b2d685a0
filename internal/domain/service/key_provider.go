package service

import "context"

// KeyProvider abstracts the host environment's API key selection capability.
// The pro generation tier requires a user-selected key; when no provider is
// wired in, or the provider errors, sessions stay on the free tier.
type KeyProvider interface {
	// HasSelectedKey reports whether the user has already selected an API key.
	HasSelectedKey(ctx context.Context) (bool, error)

	// OpenKeySelection prompts the user to select a key and reports whether
	// the selection succeeded.
	OpenKeySelection(ctx context.Context) (bool, error)
}
