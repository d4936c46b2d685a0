package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"
)

type contentRepository struct {
	store *Store
}

// NewContentRepository creates a content repository backed by the shared store.
func NewContentRepository(store *Store) repository.ContentRepository {
	return &contentRepository{store: store}
}

func (r *contentRepository) ListCommunityPosts(ctx context.Context, lang entity.Language) ([]*entity.CommunityPost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.communityPosts[lang]), nil
}

func (r *contentRepository) ListBlogPosts(ctx context.Context, lang entity.Language) ([]*entity.BlogPost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.blogPosts[lang]), nil
}

func (r *contentRepository) ListGlobalProjects(ctx context.Context, lang entity.Language) ([]*entity.GlobalProject, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.globalProjects[lang]), nil
}

func (r *contentRepository) ListInspirationSources(ctx context.Context, lang entity.Language) ([]*entity.InspirationSource, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.inspirations[lang]), nil
}
