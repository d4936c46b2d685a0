package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"
)

type directoryRepository struct {
	store *Store
}

// NewDirectoryRepository creates a directory repository backed by the shared store.
func NewDirectoryRepository(store *Store) repository.DirectoryRepository {
	return &directoryRepository{store: store}
}

func (r *directoryRepository) ListProfiles(ctx context.Context, lang entity.Language) ([]*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.profiles[lang]), nil
}

func (r *directoryRepository) FindProfileByID(ctx context.Context, lang entity.Language, id int64) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, profile := range r.store.profiles[lang] {
		if profile.ID == id {
			return profile, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *directoryRepository) ListFeaturedProjects(ctx context.Context, lang entity.Language) ([]*entity.FeaturedProject, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.featured[lang]), nil
}

func (r *directoryRepository) ListReviews(ctx context.Context, lang entity.Language, profileID int64) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, review := range r.store.reviews[lang] {
		if review.ProfileID == profileID {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}
