package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"
)

type portfolioRepository struct {
	store *Store
}

// NewPortfolioRepository creates a portfolio repository backed by the shared store.
func NewPortfolioRepository(store *Store) repository.PortfolioRepository {
	return &portfolioRepository{store: store}
}

func (r *portfolioRepository) List(ctx context.Context, lang entity.Language) ([]*entity.PortfolioProject, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.portfolio[lang]), nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, lang entity.Language, id string) (*entity.PortfolioProject, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, project := range r.store.portfolio[lang] {
		if project.ID == id {
			return project, nil
		}
	}

	return nil, repository.ErrPortfolioProjectNotFound
}
