package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"
	"turriva/internal/domain/service"
)

type storeRepository struct {
	store *Store
}

// NewStoreRepository creates a shop store repository backed by the shared store.
func NewStoreRepository(store *Store) repository.StoreRepository {
	return &storeRepository{store: store}
}

func (r *storeRepository) List(ctx context.Context, lang entity.Language) ([]*entity.Store, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.stores[lang]), nil
}

func (r *storeRepository) FindByID(ctx context.Context, lang entity.Language, id string) (*entity.Store, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, store := range r.store.stores[lang] {
		if store.ID == id {
			return store, nil
		}
	}

	return nil, repository.ErrStoreNotFound
}

func (r *storeRepository) Add(ctx context.Context, lang entity.Language, store *entity.Store) error {
	r.store.mu.Lock()
	clone := *store
	r.store.stores[lang] = prepend(r.store.stores[lang], &clone)
	r.store.mu.Unlock()

	return r.store.publisher.PublishStoreEvent(ctx, &service.StoreEvent{
		Entity: "store",
		Action: service.StoreActionAdded,
		ID:     store.ID,
	})
}

type productRepository struct {
	store *Store
}

// NewProductRepository creates a product repository backed by the shared store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) List(ctx context.Context, lang entity.Language) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.products[lang]), nil
}

func (r *productRepository) ListByStore(ctx context.Context, lang entity.Language, storeID string) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*entity.Product, 0)
	for _, product := range r.store.products[lang] {
		if product.StoreID == storeID {
			products = append(products, product)
		}
	}

	return products, nil
}

func (r *productRepository) Add(ctx context.Context, lang entity.Language, product *entity.Product) error {
	r.store.mu.Lock()
	clone := *product
	r.store.products[lang] = prepend(r.store.products[lang], &clone)
	r.store.mu.Unlock()

	return r.store.publisher.PublishStoreEvent(ctx, &service.StoreEvent{
		Entity: "product",
		Action: service.StoreActionAdded,
		ID:     product.ID,
	})
}
