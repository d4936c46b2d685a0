package impl

import (
	"context"
	"log/slog"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"
	"turriva/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

func (srv *contentService) HubFeed(ctx context.Context, lang entity.Language) ([]*entity.CommunityPost, error) {
	posts, err := srv.contentRepo.ListCommunityPosts(ctx, normalizeLanguage(lang))
	if err != nil {
		return nil, errors.Wrap(err, "list community posts")
	}

	return posts, nil
}

func (srv *contentService) ListBlogPosts(ctx context.Context, lang entity.Language) ([]*entity.BlogPost, error) {
	posts, err := srv.contentRepo.ListBlogPosts(ctx, normalizeLanguage(lang))
	if err != nil {
		return nil, errors.Wrap(err, "list blog posts")
	}

	return posts, nil
}

func (srv *contentService) Inspirations(ctx context.Context, lang entity.Language) (*usecase.InspirationsOutput, error) {
	lang = normalizeLanguage(lang)

	projects, err := srv.contentRepo.ListGlobalProjects(ctx, lang)
	if err != nil {
		return nil, errors.Wrap(err, "list global projects")
	}

	sources, err := srv.contentRepo.ListInspirationSources(ctx, lang)
	if err != nil {
		return nil, errors.Wrap(err, "list inspiration sources")
	}

	return &usecase.InspirationsOutput{
		GlobalProjects: projects,
		Sources:        sources,
	}, nil
}
