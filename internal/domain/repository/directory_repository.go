package repository

import (
	"context"
	"errors"

	"turriva/internal/domain/entity"
)

// ErrProfileNotFound is returned when no directory profile has the given id.
var ErrProfileNotFound = errors.New("profile not found")

// DirectoryRepository defines read operations over the professional
// directory. Entries are duplicated per language with parallel ids.
type DirectoryRepository interface {
	// ListProfiles returns all directory profiles in store order.
	ListProfiles(ctx context.Context, lang entity.Language) ([]*entity.Profile, error)

	// FindProfileByID retrieves a single profile by id.
	FindProfileByID(ctx context.Context, lang entity.Language, id int64) (*entity.Profile, error)

	// ListFeaturedProjects returns the promoted developments shown in the directory.
	ListFeaturedProjects(ctx context.Context, lang entity.Language) ([]*entity.FeaturedProject, error)

	// ListReviews returns the reviews attached to a profile, in store order.
	ListReviews(ctx context.Context, lang entity.Language, profileID int64) ([]*entity.Review, error)
}
