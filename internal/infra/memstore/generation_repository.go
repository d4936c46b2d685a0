package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"

	"github.com/google/uuid"
)

type generationRepository struct {
	store *Store
}

// NewGenerationRepository creates a redesign history repository backed by the shared store.
func NewGenerationRepository(store *Store) repository.GenerationRepository {
	return &generationRepository{store: store}
}

func (r *generationRepository) Add(ctx context.Context, generation *entity.Generation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *generation
	r.store.generations[generation.SessionID] = prepend(r.store.generations[generation.SessionID], &clone)

	return nil
}

func (r *generationRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Generation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.generations[sessionID]), nil
}

func (r *generationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Generation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, history := range r.store.generations {
		for _, generation := range history {
			if generation.ID == id {
				return generation, nil
			}
		}
	}

	return nil, repository.ErrGenerationNotFound
}
