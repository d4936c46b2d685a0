package genai

import (
	"context"
	"net"
	"net/http"

	domainerrors "turriva/internal/domain/errors"

	"github.com/pkg/errors"
)

// classifyTransportError distinguishes deadline expiry from other transport
// failures on a request that never produced a response.
func classifyTransportError(ctx context.Context, err error) domainerrors.GenerationKind {
	if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.GenerationTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domainerrors.GenerationTimeout
	}

	return domainerrors.GenerationNetwork
}

// classifyStatusCode maps a non-success HTTP status to a generation kind.
// The ok result is false for success statuses.
func classifyStatusCode(status int) (domainerrors.GenerationKind, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", false
	case status == http.StatusForbidden || status == http.StatusUnauthorized:
		return domainerrors.GenerationPermissionDenied, true
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		return domainerrors.GenerationTimeout, true
	case status >= 500:
		return domainerrors.GenerationNetwork, true
	default:
		return domainerrors.GenerationUnknown, true
	}
}
