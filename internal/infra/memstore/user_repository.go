package memstore

import (
	"context"
	"strings"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository backed by the shared store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *user
	r.store.users = append(r.store.users, &clone)

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.users {
		if existing.ID == user.ID {
			clone := *user
			r.store.users[i] = &clone
			return nil
		}
	}

	return repository.ErrUserNotFound
}
