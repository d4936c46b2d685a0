package usecase

import (
	"context"

	"turriva/internal/domain/entity"
)

// ProfileFilter narrows the directory listing. Query matches name, specialty,
// location, and bio case-insensitively; Category accepts a symbol, a label in
// either language, or an all facet.
type ProfileFilter struct {
	Language entity.Language
	Query    string
	Category string
}

// PortfolioFilter narrows the inspiration gallery.
type PortfolioFilter struct {
	Language entity.Language
	Category string
	Style    string
}

// ProductFilter narrows the shop listing.
type ProductFilter struct {
	Language entity.Language
	Query    string
	Category string
	Type     string
}

// DirectoryOutput is the directory page payload: the filtered profiles plus
// the promoted developments shown alongside them.
type DirectoryOutput struct {
	Profiles []*entity.Profile
	Featured []*entity.FeaturedProject
}

// ProfileDetailOutput joins a profile with its portfolio and reviews.
type ProfileDetailOutput struct {
	Profile   *entity.Profile
	Portfolio []*entity.PortfolioProject
	Reviews   []*entity.Review
}

// PortfolioDetailOutput joins a portfolio project with its professional's
// profile. Professional is nil when the work has no directory entry.
type PortfolioDetailOutput struct {
	Project      *entity.PortfolioProject
	Professional *entity.Profile
}

// StoreDetailOutput joins a store with its products.
type StoreDetailOutput struct {
	Store    *entity.Store
	Products []*entity.Product
}

// DirectoryUsecase defines the read operations behind the directory, the
// inspiration gallery, and the shop: filtered listings and joined detail pages.
type DirectoryUsecase interface {
	// FilterProfiles returns the directory profiles matching the filter.
	FilterProfiles(ctx context.Context, filter ProfileFilter) (*DirectoryOutput, error)

	// ProfileDetail returns a profile with its portfolio and reviews.
	ProfileDetail(ctx context.Context, lang entity.Language, id int64) (*ProfileDetailOutput, error)

	// FilterPortfolio returns the portfolio projects matching the filter.
	FilterPortfolio(ctx context.Context, filter PortfolioFilter) ([]*entity.PortfolioProject, error)

	// PortfolioDetail returns a portfolio project with its professional.
	PortfolioDetail(ctx context.Context, lang entity.Language, id string) (*PortfolioDetailOutput, error)

	// FilterProducts returns the shop products matching the filter.
	FilterProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListStores returns the shop's stores.
	ListStores(ctx context.Context, lang entity.Language) ([]*entity.Store, error)

	// StoreDetail returns a store with its products.
	StoreDetail(ctx context.Context, lang entity.Language, id string) (*StoreDetailOutput, error)
}
