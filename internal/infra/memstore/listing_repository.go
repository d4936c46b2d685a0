package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"
	"turriva/internal/domain/service"
)

type projectRepository struct {
	store *Store
}

// NewProjectRepository creates a job listing repository backed by the shared store.
func NewProjectRepository(store *Store) repository.ProjectRepository {
	return &projectRepository{store: store}
}

func (r *projectRepository) List(ctx context.Context, lang entity.Language) ([]*entity.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.projects[lang]), nil
}

func (r *projectRepository) FindByID(ctx context.Context, lang entity.Language, id string) (*entity.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, project := range r.store.projects[lang] {
		if project.ID == id {
			return project, nil
		}
	}

	return nil, repository.ErrProjectNotFound
}

func (r *projectRepository) Add(ctx context.Context, lang entity.Language, project *entity.Project) error {
	r.store.mu.Lock()
	clone := *project
	r.store.projects[lang] = prepend(r.store.projects[lang], &clone)
	r.store.mu.Unlock()

	return r.store.publisher.PublishStoreEvent(ctx, &service.StoreEvent{
		Entity: "project",
		Action: service.StoreActionAdded,
		ID:     project.ID,
	})
}

type landRepository struct {
	store *Store
}

// NewLandRepository creates a land listing repository backed by the shared store.
func NewLandRepository(store *Store) repository.LandRepository {
	return &landRepository{store: store}
}

func (r *landRepository) List(ctx context.Context, lang entity.Language) ([]*entity.LandListing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.land[lang]), nil
}

func (r *landRepository) Add(ctx context.Context, lang entity.Language, listing *entity.LandListing) error {
	r.store.mu.Lock()
	clone := *listing
	r.store.land[lang] = prepend(r.store.land[lang], &clone)
	r.store.mu.Unlock()

	return r.store.publisher.PublishStoreEvent(ctx, &service.StoreEvent{
		Entity: "land",
		Action: service.StoreActionAdded,
		ID:     listing.ID,
	})
}

type propertyRepository struct {
	store *Store
}

// NewPropertyRepository creates a property listing repository backed by the shared store.
func NewPropertyRepository(store *Store) repository.PropertyRepository {
	return &propertyRepository{store: store}
}

func (r *propertyRepository) List(ctx context.Context, lang entity.Language) ([]*entity.PropertyListing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return snapshot(r.store.properties[lang]), nil
}

func (r *propertyRepository) FindByID(ctx context.Context, lang entity.Language, id string) (*entity.PropertyListing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, listing := range r.store.properties[lang] {
		if listing.ID == id {
			return listing, nil
		}
	}

	return nil, repository.ErrPropertyNotFound
}
