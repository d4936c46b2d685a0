package repository

import (
	"context"
	"errors"

	"turriva/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGenerationNotFound is returned when no generation has the given id.
var ErrGenerationNotFound = errors.New("generation not found")

// GenerationRepository defines operations over the redesign history.
// History is append-only; entries are never updated or evicted.
type GenerationRepository interface {
	// Add prepends a completed generation to its session's history.
	Add(ctx context.Context, generation *entity.Generation) error

	// ListBySession returns a session's history, newest first.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Generation, error)

	// FindByID retrieves a single generation by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Generation, error)
}
