// Package memstore contains the concrete implementation of the data store
// layer. All data lives in process memory: curated content is loaded from the
// seed fixture at startup and mutations last until the process exits.
package memstore

import (
	"sync"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store is the shared backing state for every repository. A single RWMutex
// serializes writers; repositories are handed out per aggregate the same way
// a database handle would be.
type Store struct {
	mu sync.RWMutex

	users    []*entity.User
	sessions map[uuid.UUID]*entity.Session

	profiles  map[entity.Language][]*entity.Profile
	featured  map[entity.Language][]*entity.FeaturedProject
	portfolio map[entity.Language][]*entity.PortfolioProject
	reviews   map[entity.Language][]*entity.Review

	stores   map[entity.Language][]*entity.Store
	products map[entity.Language][]*entity.Product

	projects   map[entity.Language][]*entity.Project
	land       map[entity.Language][]*entity.LandListing
	properties map[entity.Language][]*entity.PropertyListing

	communityPosts map[entity.Language][]*entity.CommunityPost
	blogPosts      map[entity.Language][]*entity.BlogPost
	globalProjects map[entity.Language][]*entity.GlobalProject
	inspirations   map[entity.Language][]*entity.InspirationSource

	generations map[uuid.UUID][]*entity.Generation

	publisher service.EventPublisher
}

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In

	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
}

// New creates the store and loads the seed fixture.
func New(params Params) (*Store, error) {
	store := &Store{
		sessions:    make(map[uuid.UUID]*entity.Session),
		generations: make(map[uuid.UUID][]*entity.Generation),
		publisher:   params.Publisher,
	}

	if err := store.seed(params.Hasher); err != nil {
		return nil, errors.Wrap(err, "seed store")
	}

	return store, nil
}

// prepend inserts an element at the head of a slice so listings read newest
// first without sorting.
func prepend[T any](items []*T, item *T) []*T {
	return append([]*T{item}, items...)
}

// snapshot copies a slice so callers can range over it outside the lock.
func snapshot[T any](items []*T) []*T {
	out := make([]*T, len(items))
	copy(out, items)

	return out
}
