package memstore

import (
	"context"

	"turriva/internal/domain/entity"
	"turriva/internal/domain/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	store *Store
}

// NewSessionRepository creates a session repository backed by the shared store.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *session
	r.store.sessions[session.ID] = &clone

	return nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	clone := *session

	return &clone, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sessions[session.ID]; !ok {
		return repository.ErrSessionNotFound
	}

	clone := *session
	r.store.sessions[session.ID] = &clone

	return nil
}
