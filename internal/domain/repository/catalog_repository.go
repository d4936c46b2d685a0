package repository

import (
	"context"
	"errors"

	"turriva/internal/domain/entity"
)

// ErrStoreNotFound is returned when no store has the given id.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines operations over the shop's stores.
type StoreRepository interface {
	// List returns all stores, newest first.
	List(ctx context.Context, lang entity.Language) ([]*entity.Store, error)

	// FindByID retrieves a single store by id.
	FindByID(ctx context.Context, lang entity.Language, id string) (*entity.Store, error)

	// Add prepends a store to the given language variant.
	Add(ctx context.Context, lang entity.Language, store *entity.Store) error
}

// ProductRepository defines operations over the shop's products.
type ProductRepository interface {
	// List returns all products, newest first.
	List(ctx context.Context, lang entity.Language) ([]*entity.Product, error)

	// ListByStore returns the products belonging to a store, newest first.
	ListByStore(ctx context.Context, lang entity.Language, storeID string) ([]*entity.Product, error)

	// Add prepends a product to the given language variant.
	Add(ctx context.Context, lang entity.Language, product *entity.Product) error
}
