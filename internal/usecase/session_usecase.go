// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"turriva/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a visitor to log in.
type LoginInput struct {
	SessionID uuid.UUID
	Email     string
	Password  string
}

// StoreSignupInput carries the store details a vendor provides at signup.
type StoreSignupInput struct {
	Name        string
	Description string
	ImageURL    string
}

// SignupInput defines the data required to register a new account.
// Store is required when Role is vendor and ignored otherwise.
type SignupInput struct {
	SessionID uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      entity.Role
	Store     *StoreSignupInput
}

// --- Output DTOs ---

// AuthOutput returns the session and tokens after a successful login or signup.
type AuthOutput struct {
	Session      *entity.Session
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// SessionUsecase defines the per-visitor session operations: creation,
// navigation, UI state, and the authentication flows that ride on the
// session's auth modal.
type SessionUsecase interface {
	// CreateSession starts a new session with the default state.
	CreateSession(ctx context.Context) (*entity.Session, error)

	// GetSession retrieves a session by id.
	GetSession(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// SetCurrentPage navigates the session. Unknown pages land on home, and
	// detail pages without a matching active id fall back to their list page.
	SetCurrentPage(ctx context.Context, id uuid.UUID, page string) (*entity.Session, error)

	// SetLanguage switches the session's content language.
	SetLanguage(ctx context.Context, id uuid.UUID, lang entity.Language) (*entity.Session, error)

	// ToggleTheme flips the session between light and dark.
	ToggleTheme(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// OpenAuthModal opens the auth modal on the given view, remembering the
	// page to land on after authentication.
	OpenAuthModal(ctx context.Context, id uuid.UUID, view entity.AuthModalView, redirect string) (*entity.Session, error)

	// CloseAuthModal dismisses the modal and resets it to the login view.
	CloseAuthModal(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Login authenticates the visitor and attaches the account to the session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Signup registers a new account and logs the visitor in.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)

	// Logout detaches the account and returns the session to the home page.
	Logout(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// ViewProject opens the job listing detail page for the given listing.
	ViewProject(ctx context.Context, id uuid.UUID, projectID string) (*entity.Session, error)

	// ViewProfile opens the directory profile detail page for the given profile.
	ViewProfile(ctx context.Context, id uuid.UUID, profileID int64) (*entity.Session, error)

	// ViewStore opens the store detail page for the given store.
	ViewStore(ctx context.Context, id uuid.UUID, storeID string) (*entity.Session, error)
}
