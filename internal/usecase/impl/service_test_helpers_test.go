package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/service"
	"turriva/internal/infra/memstore"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }
func (stubHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength
	}

	return nil
}

type stubTokenService struct{}

func (stubTokenService) GenerateTokens(userID uuid.UUID, _ []string) (string, string, error) {
	return "access-" + userID.String(), "refresh-" + userID.String(), nil
}

func (stubTokenService) ValidateToken(string, string) (*jwt.Token, error) {
	return nil, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishStoreEvent(context.Context, *service.StoreEvent) error { return nil }
func (nopPublisher) Close() error                                                 { return nil }

// fakeGenerator lets each test script the image service's behavior.
type fakeGenerator struct {
	fn func(ctx context.Context, input *service.GenerateImageInput) (*service.GenerateImageOutput, error)
}

func (g *fakeGenerator) GenerateImage(ctx context.Context, input *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
	return g.fn(ctx, input)
}

// fakeKeyProvider scripts the key selection flow.
type fakeKeyProvider struct {
	hasKey  bool
	selects bool
}

func (p *fakeKeyProvider) HasSelectedKey(context.Context) (bool, error)   { return p.hasKey, nil }
func (p *fakeKeyProvider) OpenKeySelection(context.Context) (bool, error) { return p.selects, nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSeededStore(t *testing.T) *memstore.Store {
	t.Helper()

	store, err := memstore.New(memstore.Params{Hasher: stubHasher{}, Publisher: nopPublisher{}})
	require.NoError(t, err)

	return store
}
