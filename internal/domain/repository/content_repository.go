package repository

import (
	"context"

	"turriva/internal/domain/entity"
)

// ContentRepository defines read operations over the editorial content seeds:
// the hub feed, the blog, and the inspiration galleries.
type ContentRepository interface {
	ListCommunityPosts(ctx context.Context, lang entity.Language) ([]*entity.CommunityPost, error)
	ListBlogPosts(ctx context.Context, lang entity.Language) ([]*entity.BlogPost, error)
	ListGlobalProjects(ctx context.Context, lang entity.Language) ([]*entity.GlobalProject, error)
	ListInspirationSources(ctx context.Context, lang entity.Language) ([]*entity.InspirationSource, error)
}
