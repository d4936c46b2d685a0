package genai

import (
	"context"
	"testing"
	"time"

	domainerrors "turriva/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	live := context.Background()

	expired, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-expired.Done()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want domainerrors.GenerationKind
	}{
		{
			name: "expired context",
			ctx:  expired,
			err:  errors.New("context deadline exceeded"),
			want: domainerrors.GenerationTimeout,
		},
		{
			name: "wrapped deadline with live context",
			ctx:  live,
			err:  errors.Wrap(context.DeadlineExceeded, "Post \"https://example\""),
			want: domainerrors.GenerationTimeout,
		},
		{
			name: "net timeout with live context",
			ctx:  live,
			err:  errors.Wrap(timeoutNetError{}, "dial tcp"),
			want: domainerrors.GenerationTimeout,
		},
		{
			name: "connection refused",
			ctx:  live,
			err:  errors.New("connection refused"),
			want: domainerrors.GenerationNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTransportError(tt.ctx, tt.err))
		})
	}
}
