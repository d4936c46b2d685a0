package repository

import (
	"context"
	"errors"

	"turriva/internal/domain/entity"
)

// ErrProjectNotFound is returned when no job listing has the given id.
var ErrProjectNotFound = errors.New("project not found")

// ErrPropertyNotFound is returned when no property listing has the given id.
var ErrPropertyNotFound = errors.New("property listing not found")

// ProjectRepository defines operations over job listings on the projects market.
type ProjectRepository interface {
	// List returns all job listings, newest first.
	List(ctx context.Context, lang entity.Language) ([]*entity.Project, error)

	// FindByID retrieves a single job listing by id.
	FindByID(ctx context.Context, lang entity.Language, id string) (*entity.Project, error)

	// Add prepends a job listing to the given language variant.
	Add(ctx context.Context, lang entity.Language, project *entity.Project) error
}

// LandRepository defines operations over land listings.
type LandRepository interface {
	// List returns all land listings, newest first.
	List(ctx context.Context, lang entity.Language) ([]*entity.LandListing, error)

	// Add prepends a land listing to the given language variant.
	Add(ctx context.Context, lang entity.Language, listing *entity.LandListing) error
}

// PropertyRepository defines read operations over real-estate market listings.
type PropertyRepository interface {
	// List returns all property listings in store order.
	List(ctx context.Context, lang entity.Language) ([]*entity.PropertyListing, error)

	// FindByID retrieves a single property listing by id.
	FindByID(ctx context.Context, lang entity.Language, id string) (*entity.PropertyListing, error)
}
