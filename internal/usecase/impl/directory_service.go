package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "turriva/internal/delivery/context"
	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/repository"
	"turriva/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	directoryRepo repository.DirectoryRepository
	portfolioRepo repository.PortfolioRepository
	storeRepo     repository.StoreRepository
	productRepo   repository.ProductRepository
	logger        *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	DirectoryRepo repository.DirectoryRepository
	PortfolioRepo repository.PortfolioRepository
	StoreRepo     repository.StoreRepository
	ProductRepo   repository.ProductRepository
	Logger        *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		directoryRepo: params.DirectoryRepo,
		portfolioRepo: params.PortfolioRepo,
		storeRepo:     params.StoreRepo,
		productRepo:   params.ProductRepo,
		logger:        params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *directoryService) FilterProfiles(ctx context.Context, filter usecase.ProfileFilter) (*usecase.DirectoryOutput, error) {
	lang := normalizeLanguage(filter.Language)

	profiles, err := srv.directoryRepo.ListProfiles(ctx, lang)
	if err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}

	category, matchCategory, err := resolveCategoryFacet(filter.Category)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]*entity.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if matchCategory && profile.Category != category {
			continue
		}
		if query != "" && !profileMatchesQuery(profile, query) {
			continue
		}
		matched = append(matched, profile)
	}

	featured, err := srv.directoryRepo.ListFeaturedProjects(ctx, lang)
	if err != nil {
		return nil, errors.Wrap(err, "list featured projects")
	}
	if matchCategory && category != entity.DirectoryOpportunities {
		featured = nil
	}

	return &usecase.DirectoryOutput{Profiles: matched, Featured: featured}, nil
}

func (srv *directoryService) ProfileDetail(ctx context.Context, lang entity.Language, id int64) (*usecase.ProfileDetailOutput, error) {
	lang = normalizeLanguage(lang)

	profile, err := srv.directoryRepo.FindProfileByID(ctx, lang, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find profile")
	}

	// Portfolio ids that no longer resolve are skipped rather than failing
	// the whole page.
	portfolio := make([]*entity.PortfolioProject, 0, len(profile.PortfolioProjectIDs))
	for _, projectID := range profile.PortfolioProjectIDs {
		project, err := srv.portfolioRepo.FindByID(ctx, lang, projectID)
		if errors.Is(err, repository.ErrPortfolioProjectNotFound) {
			srv.log(ctx).Warn("Profile references missing portfolio project",
				slog.Int64("profileID", id),
				slog.String("projectID", projectID),
			)

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "find portfolio project")
		}
		portfolio = append(portfolio, project)
	}

	reviews, err := srv.directoryRepo.ListReviews(ctx, lang, id)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}

	return &usecase.ProfileDetailOutput{
		Profile:   profile,
		Portfolio: portfolio,
		Reviews:   reviews,
	}, nil
}

func (srv *directoryService) FilterPortfolio(ctx context.Context, filter usecase.PortfolioFilter) ([]*entity.PortfolioProject, error) {
	projects, err := srv.portfolioRepo.List(ctx, normalizeLanguage(filter.Language))
	if err != nil {
		return nil, errors.Wrap(err, "list portfolio projects")
	}

	var (
		category      entity.PortfolioCategory
		matchCategory bool
		style         entity.PortfolioStyle
		matchStyle    bool
	)
	if !entity.IsAllFacet(filter.Category) {
		category, matchCategory = entity.ParsePortfolioCategory(filter.Category)
		if !matchCategory {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown portfolio category")
		}
	}
	if !entity.IsAllFacet(filter.Style) {
		style, matchStyle = entity.ParsePortfolioStyle(filter.Style)
		if !matchStyle {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown portfolio style")
		}
	}

	matched := make([]*entity.PortfolioProject, 0, len(projects))
	for _, project := range projects {
		if matchCategory && project.Category != category {
			continue
		}
		if matchStyle && project.Style != style {
			continue
		}
		matched = append(matched, project)
	}

	return matched, nil
}

func (srv *directoryService) PortfolioDetail(ctx context.Context, lang entity.Language, id string) (*usecase.PortfolioDetailOutput, error) {
	lang = normalizeLanguage(lang)

	project, err := srv.portfolioRepo.FindByID(ctx, lang, id)
	if errors.Is(err, repository.ErrPortfolioProjectNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find portfolio project")
	}

	output := &usecase.PortfolioDetailOutput{Project: project}

	// Landmark works have no directory entry; the page simply omits the
	// professional card.
	professional, err := srv.directoryRepo.FindProfileByID(ctx, lang, project.ProfessionalID)
	if err == nil {
		output.Professional = professional
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "find professional")
	}

	return output, nil
}

func (srv *directoryService) FilterProducts(ctx context.Context, filter usecase.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, normalizeLanguage(filter.Language))
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	var (
		category      entity.ProductCategory
		matchCategory bool
		productType   entity.ProductType
		matchType     bool
	)
	if !entity.IsAllFacet(filter.Category) {
		category, matchCategory = entity.ParseProductCategory(filter.Category)
		if !matchCategory {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product category")
		}
	}
	if !entity.IsAllFacet(filter.Type) {
		productType = entity.ProductType(filter.Type)
		if !productType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product type")
		}
		matchType = true
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if matchCategory && product.Category != category {
			continue
		}
		if matchType && product.ProductType != productType {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(product.Name), query) &&
			!strings.Contains(strings.ToLower(product.StoreName), query) {
			continue
		}
		matched = append(matched, product)
	}

	return matched, nil
}

func (srv *directoryService) ListStores(ctx context.Context, lang entity.Language) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx, normalizeLanguage(lang))
	if err != nil {
		return nil, errors.Wrap(err, "list stores")
	}

	return stores, nil
}

func (srv *directoryService) StoreDetail(ctx context.Context, lang entity.Language, id string) (*usecase.StoreDetailOutput, error) {
	lang = normalizeLanguage(lang)

	store, err := srv.storeRepo.FindByID(ctx, lang, id)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find store")
	}

	products, err := srv.productRepo.ListByStore(ctx, lang, id)
	if err != nil {
		return nil, errors.Wrap(err, "list store products")
	}

	return &usecase.StoreDetailOutput{Store: store, Products: products}, nil
}

// resolveCategoryFacet turns a raw category facet into a match target. The
// all facet in either language disables category matching.
func resolveCategoryFacet(raw string) (entity.DirectoryCategory, bool, error) {
	if entity.IsAllFacet(raw) {
		return "", false, nil
	}

	category, ok := entity.ParseDirectoryCategory(raw)
	if !ok {
		return "", false, domainerrors.ErrValidationFailed.WrapMessage("unknown directory category")
	}

	return category, true, nil
}

func profileMatchesQuery(profile *entity.Profile, query string) bool {
	for _, field := range []string{profile.Name, profile.Specialty, profile.Location, profile.Bio} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

// normalizeLanguage guards list reads against a zero-value language.
func normalizeLanguage(lang entity.Language) entity.Language {
	if !lang.IsValid() {
		return entity.DefaultLanguage
	}

	return lang
}
