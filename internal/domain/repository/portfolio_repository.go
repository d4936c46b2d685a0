package repository

import (
	"context"
	"errors"

	"turriva/internal/domain/entity"
)

// ErrPortfolioProjectNotFound is returned when no portfolio project has the given id.
var ErrPortfolioProjectNotFound = errors.New("portfolio project not found")

// PortfolioRepository defines read operations over portfolio projects.
type PortfolioRepository interface {
	// List returns all portfolio projects in store order.
	List(ctx context.Context, lang entity.Language) ([]*entity.PortfolioProject, error)

	// FindByID retrieves a single portfolio project by id.
	FindByID(ctx context.Context, lang entity.Language, id string) (*entity.PortfolioProject, error)
}
