package repository

import (
	"context"
	"errors"

	"turriva/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id has no live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines operations for the in-memory session store.
// Sessions live for the lifetime of the process.
type SessionRepository interface {
	// Create adds a new session to the store.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Save writes back a modified session.
	Save(ctx context.Context, session *entity.Session) error
}
