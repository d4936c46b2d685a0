// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "turriva/internal/delivery/context"
	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/repository"
	"turriva/internal/domain/service"
	"turriva/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo  repository.SessionRepository
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo  repository.SessionRepository
	UserRepo     repository.UserRepository
	StoreRepo    repository.StoreRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo:  params.SessionRepo,
		userRepo:     params.UserRepo,
		storeRepo:    params.StoreRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) CreateSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession()
	session.Studio = entity.DefaultStudioState()

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "create session")
	}

	srv.log(ctx).Debug("Session created", slog.String("sessionID", session.ID.String()))

	return session, nil
}

func (srv *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find session")
	}

	return session, nil
}

// SetCurrentPage navigates the session. Detail pages only make sense with a
// matching active id; without one the session lands on the closest list page.
func (srv *sessionService) SetCurrentPage(ctx context.Context, id uuid.UUID, page string) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		target := entity.ParsePage(page)

		switch target {
		case entity.PageProjectDetail:
			if session.ActiveProjectID == "" {
				target = entity.PageHome
			}
		case entity.PageProfileDetail:
			if session.ActiveProfileID == 0 {
				target = entity.PageDirectory
			}
		case entity.PageStoreDetail:
			if session.ActiveStoreID == "" {
				target = entity.PageShop
			}
		}

		session.CurrentPage = target

		return nil
	})
}

func (srv *sessionService) SetLanguage(ctx context.Context, id uuid.UUID, lang entity.Language) (*entity.Session, error) {
	if !lang.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown language")
	}

	return srv.update(ctx, id, func(session *entity.Session) error {
		session.Language = lang

		return nil
	})
}

func (srv *sessionService) ToggleTheme(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		session.Theme = session.Theme.Toggle()

		return nil
	})
}

func (srv *sessionService) OpenAuthModal(ctx context.Context, id uuid.UUID, view entity.AuthModalView, redirect string) (*entity.Session, error) {
	if !view.IsValid() {
		view = entity.AuthViewLogin
	}

	return srv.update(ctx, id, func(session *entity.Session) error {
		session.AuthModal = entity.AuthModalState{
			Open: true,
			View: view,
		}
		if redirect != "" {
			session.AuthModal.RedirectPage = entity.ParsePage(redirect)
		}

		return nil
	})
}

func (srv *sessionService) CloseAuthModal(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		session.AuthModal = entity.AuthModalState{View: entity.AuthViewLogin}

		return nil
	})
}

func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	session, err := srv.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.attachUser(ctx, session, user)
}

func (srv *sessionService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	session, err := srv.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !input.Role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "find user by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Membership:   membershipForRole(input.Role),
		CreatedAt:    time.Now(),
	}

	if input.Role == entity.RoleVendor && input.Store != nil {
		storeID, err := srv.createVendorStore(ctx, input.Store)
		if err != nil {
			return nil, err
		}
		user.StoreID = storeID
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	srv.log(ctx).Info("Account registered",
		slog.String("userID", user.ID.String()),
		slog.String("role", string(user.Role)),
	)

	return srv.attachUser(ctx, session, user)
}

func (srv *sessionService) Logout(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		session.UserID = uuid.Nil
		session.CurrentPage = entity.PageHome
		session.ActiveProjectID = ""
		session.ActiveProfileID = 0
		session.ActiveStoreID = ""

		return nil
	})
}

func (srv *sessionService) ViewProject(ctx context.Context, id uuid.UUID, projectID string) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		session.ActiveProjectID = projectID
		session.CurrentPage = entity.PageProjectDetail

		return nil
	})
}

func (srv *sessionService) ViewProfile(ctx context.Context, id uuid.UUID, profileID int64) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		session.ActiveProfileID = profileID
		session.CurrentPage = entity.PageProfileDetail

		return nil
	})
}

func (srv *sessionService) ViewStore(ctx context.Context, id uuid.UUID, storeID string) (*entity.Session, error) {
	return srv.update(ctx, id, func(session *entity.Session) error {
		session.ActiveStoreID = storeID
		session.CurrentPage = entity.PageStoreDetail

		return nil
	})
}

// update loads a session, applies the mutation, and writes it back.
func (srv *sessionService) update(ctx context.Context, id uuid.UUID, mutate func(*entity.Session) error) (*entity.Session, error) {
	session, err := srv.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(session); err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	return session, nil
}

// attachUser logs the account into the session: the modal closes, and the
// session jumps to the remembered redirect page when one was set.
func (srv *sessionService) attachUser(ctx context.Context, session *entity.Session, user *entity.User) (*usecase.AuthOutput, error) {
	session.UserID = user.ID
	if redirect := session.AuthModal.RedirectPage; redirect != "" {
		session.CurrentPage = redirect
	}
	session.AuthModal = entity.AuthModalState{View: entity.AuthViewLogin}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.AuthOutput{
		Session:      session,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// createVendorStore creates the vendor's store in both language variants
// under a single shared id.
func (srv *sessionService) createVendorStore(ctx context.Context, input *usecase.StoreSignupInput) (string, error) {
	storeID := uuid.NewString()

	variants := map[entity.Language]*entity.Store{
		entity.LanguageArabic: {
			ID:              storeID,
			Name:            input.Name,
			Description:     input.Description,
			ImageURL:        input.ImageURL,
			MainImageURL:    input.ImageURL,
			CollectionTitle: "مجموعة " + input.Name,
		},
		entity.LanguageEnglish: {
			ID:              storeID,
			Name:            input.Name,
			Description:     input.Description,
			ImageURL:        input.ImageURL,
			MainImageURL:    input.ImageURL,
			CollectionTitle: input.Name + " Collection",
		},
	}

	for _, lang := range entity.Languages() {
		if err := srv.storeRepo.Add(ctx, lang, variants[lang]); err != nil {
			return "", errors.Wrap(err, "add vendor store")
		}
	}

	return storeID, nil
}

func membershipForRole(role entity.Role) entity.Membership {
	switch role {
	case entity.RoleVendor:
		return entity.MembershipBusiness
	case entity.RoleProfessional:
		return entity.MembershipPro
	default:
		return entity.MembershipFree
	}
}
