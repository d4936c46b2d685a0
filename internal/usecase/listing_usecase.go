package usecase

import (
	"context"

	"turriva/internal/domain/entity"

	"github.com/google/uuid"
)

// AddProjectInput defines the data for posting a job listing.
type AddProjectInput struct {
	Title       string
	Client      string
	Budget      string
	Deadline    string
	Category    string
	Description string
	City        string
}

// AddProductInput defines the data for a vendor listing a product.
type AddProductInput struct {
	UserID        uuid.UUID
	Name          string
	Price         string
	OriginalPrice string
	ImageURL      string
	Category      string
	Type          string
	Subcategory   string
	FileFormats   []string
}

// AddLandInput defines the data for a land owner listing a plot.
type AddLandInput struct {
	OwnerName    string
	City         string
	Neighborhood string
	Area         int
	Description  string
	ImageURL     string
}

// ListingUsecase defines the marketplace write and read operations: job
// listings, vendor products, land plots, and the real-estate market.
type ListingUsecase interface {
	// ListProjects returns the job listings, newest first.
	ListProjects(ctx context.Context, lang entity.Language) ([]*entity.Project, error)

	// ProjectDetail returns a single job listing.
	ProjectDetail(ctx context.Context, lang entity.Language, id string) (*entity.Project, error)

	// AddProject posts a job listing to both language variants under one id.
	AddProject(ctx context.Context, input AddProjectInput) (*entity.Project, error)

	// AddProduct lists a product under the vendor's store in both language
	// variants under one id.
	AddProduct(ctx context.Context, input AddProductInput) (*entity.Product, error)

	// ListLand returns the land listings, newest first.
	ListLand(ctx context.Context, lang entity.Language) ([]*entity.LandListing, error)

	// AddLandListing posts a plot to both language variants under one id.
	AddLandListing(ctx context.Context, input AddLandInput) (*entity.LandListing, error)

	// ListProperties returns the real-estate market listings.
	ListProperties(ctx context.Context, lang entity.Language) ([]*entity.PropertyListing, error)

	// PropertyDetail returns a property listing with its developer's profile.
	PropertyDetail(ctx context.Context, lang entity.Language, id string) (*PropertyDetailOutput, error)
}

// PropertyDetailOutput joins a property listing with its developer's profile.
// Developer is nil when the listing has no directory entry.
type PropertyDetailOutput struct {
	Property  *entity.PropertyListing
	Developer *entity.Profile
}
