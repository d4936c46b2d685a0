package usecase

import (
	"context"

	"turriva/internal/domain/entity"
)

// InspirationsOutput is the inspirations page payload: landmark works and the
// designers behind them.
type InspirationsOutput struct {
	GlobalProjects []*entity.GlobalProject
	Sources        []*entity.InspirationSource
}

// ContentUsecase defines the read operations over editorial content: the
// professionals' hub feed, the blog, and the inspirations page.
type ContentUsecase interface {
	// HubFeed returns the community posts shown in the professionals' hub.
	HubFeed(ctx context.Context, lang entity.Language) ([]*entity.CommunityPost, error)

	// ListBlogPosts returns the blog articles.
	ListBlogPosts(ctx context.Context, lang entity.Language) ([]*entity.BlogPost, error)

	// Inspirations returns the inspirations page payload.
	Inspirations(ctx context.Context, lang entity.Language) (*InspirationsOutput, error)
}
