package impl

import (
	"context"
	"testing"

	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/infra/memstore"
	"turriva/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (usecase.SessionUsecase, *memstore.Store) {
	t.Helper()

	store := newSeededStore(t)
	srv := NewSessionService(SessionServiceParams{
		SessionRepo:  memstore.NewSessionRepository(store),
		UserRepo:     memstore.NewUserRepository(store),
		StoreRepo:    memstore.NewStoreRepository(store),
		Hasher:       stubHasher{},
		TokenService: stubTokenService{},
		Logger:       testLogger(),
	})

	return srv, store
}

func startSession(t *testing.T, srv usecase.SessionUsecase) *entity.Session {
	t.Helper()

	session, err := srv.CreateSession(context.Background())
	require.NoError(t, err)

	return session
}

func TestCreateSession_Defaults(t *testing.T) {
	srv, _ := newSessionService(t)

	session := startSession(t, srv)
	assert.Equal(t, entity.PageHome, session.CurrentPage)
	assert.Equal(t, entity.LanguageArabic, session.Language)
	assert.Equal(t, entity.ThemeLight, session.Theme)
	assert.False(t, session.AuthModal.Open)
	assert.Equal(t, entity.AuthViewLogin, session.AuthModal.View)
	assert.Equal(t, entity.StudioIdle, session.Studio.Phase)
	assert.False(t, session.Authenticated())
}

func TestGetSession_Unknown(t *testing.T) {
	srv, _ := newSessionService(t)

	_, err := srv.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSetCurrentPage_UnknownLandsOnHome(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	updated, err := srv.SetCurrentPage(ctx, session.ID, "no-such-page")
	require.NoError(t, err)
	assert.Equal(t, entity.PageHome, updated.CurrentPage)
}

func TestSetCurrentPage_DetailFallbacks(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()

	cases := []struct {
		page string
		want entity.Page
	}{
		{"projectDetail", entity.PageHome},
		{"profileDetail", entity.PageDirectory},
		{"storeDetail", entity.PageShop},
	}
	for _, tc := range cases {
		session := startSession(t, srv)
		updated, err := srv.SetCurrentPage(ctx, session.ID, tc.page)
		require.NoError(t, err)
		assert.Equal(t, tc.want, updated.CurrentPage, "page %s", tc.page)
	}
}

func TestSetCurrentPage_Idempotent(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	first, err := srv.SetCurrentPage(ctx, session.ID, "directory")
	require.NoError(t, err)
	second, err := srv.SetCurrentPage(ctx, session.ID, "directory")
	require.NoError(t, err)
	assert.Equal(t, first.CurrentPage, second.CurrentPage)
}

func TestViewProfile_ThenDetailPageSticks(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	updated, err := srv.ViewProfile(ctx, session.ID, 101)
	require.NoError(t, err)
	assert.Equal(t, entity.PageProfileDetail, updated.CurrentPage)
	assert.EqualValues(t, 101, updated.ActiveProfileID)

	// With an active profile the detail page no longer falls back.
	again, err := srv.SetCurrentPage(ctx, session.ID, "profileDetail")
	require.NoError(t, err)
	assert.Equal(t, entity.PageProfileDetail, again.CurrentPage)
}

func TestSetLanguage(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	updated, err := srv.SetLanguage(ctx, session.ID, entity.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageEnglish, updated.Language)

	_, err = srv.SetLanguage(ctx, session.ID, entity.Language("fr"))
	assert.Error(t, err)
}

func TestToggleTheme(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	dark, err := srv.ToggleTheme(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, dark.Theme)

	light, err := srv.ToggleTheme(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, light.Theme)
}

func TestLogin_Success(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	output, err := srv.Login(ctx, usecase.LoginInput{
		SessionID: session.ID,
		Email:     "john@example.com",
		Password:  "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", output.User.Name)
	assert.Equal(t, entity.RoleProfessional, output.User.Role)
	assert.True(t, output.Session.Authenticated())
	assert.False(t, output.Session.AuthModal.Open)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	_, err := srv.Login(ctx, usecase.LoginInput{
		SessionID: session.ID,
		Email:     "john@example.com",
		Password:  "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = srv.Login(ctx, usecase.LoginInput{
		SessionID: session.ID,
		Email:     "nobody@example.com",
		Password:  "password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_RedirectsToRememberedPage(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	opened, err := srv.OpenAuthModal(ctx, session.ID, entity.AuthViewLogin, "hub")
	require.NoError(t, err)
	assert.True(t, opened.AuthModal.Open)
	assert.Equal(t, entity.PageHub, opened.AuthModal.RedirectPage)

	output, err := srv.Login(ctx, usecase.LoginInput{
		SessionID: session.ID,
		Email:     "john@example.com",
		Password:  "password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PageHub, output.Session.CurrentPage)
	assert.Empty(t, output.Session.AuthModal.RedirectPage)
}

func TestCloseAuthModal_ResetsToLoginView(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	_, err := srv.OpenAuthModal(ctx, session.ID, entity.AuthViewSignup, "")
	require.NoError(t, err)

	closed, err := srv.CloseAuthModal(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, closed.AuthModal.Open)
	assert.Equal(t, entity.AuthViewLogin, closed.AuthModal.View)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	srv, store := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	_, err := srv.Signup(ctx, usecase.SignupInput{
		SessionID: session.ID,
		Name:      "Another Jane",
		Email:     "jane@example.com",
		Password:  "password123",
		Role:      entity.RoleClient,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	// The existing account is untouched.
	existing, err := memstore.NewUserRepository(store).FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", existing.Name)
}

func TestSignup_ProfessionalGetsProMembership(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	output, err := srv.Signup(ctx, usecase.SignupInput{
		SessionID: session.ID,
		Name:      "Lina",
		Email:     "lina@example.com",
		Password:  "password123",
		Role:      entity.RoleProfessional,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipPro, output.User.Membership)
	assert.True(t, output.Session.Authenticated())
}

func TestSignup_VendorCreatesStorePerLanguage(t *testing.T) {
	srv, store := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	output, err := srv.Signup(ctx, usecase.SignupInput{
		SessionID: session.ID,
		Name:      "Noor",
		Email:     "noor@example.com",
		Password:  "password123",
		Role:      entity.RoleVendor,
		Store: &usecase.StoreSignupInput{
			Name:        "متجر نور",
			Description: "ديكورات منزلية",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipBusiness, output.User.Membership)
	require.NotEmpty(t, output.User.StoreID)

	storeRepo := memstore.NewStoreRepository(store)

	arabic, err := storeRepo.FindByID(ctx, entity.LanguageArabic, output.User.StoreID)
	require.NoError(t, err)
	assert.Equal(t, "مجموعة متجر نور", arabic.CollectionTitle)

	english, err := storeRepo.FindByID(ctx, entity.LanguageEnglish, output.User.StoreID)
	require.NoError(t, err)
	assert.Equal(t, "متجر نور Collection", english.CollectionTitle)
	assert.Equal(t, arabic.ID, english.ID)
}

func TestLogout_ResetsSession(t *testing.T) {
	srv, _ := newSessionService(t)
	ctx := context.Background()
	session := startSession(t, srv)

	_, err := srv.Login(ctx, usecase.LoginInput{
		SessionID: session.ID,
		Email:     "john@example.com",
		Password:  "password",
	})
	require.NoError(t, err)

	_, err = srv.ViewStore(ctx, session.ID, "store-1")
	require.NoError(t, err)

	out, err := srv.Logout(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, out.Authenticated())
	assert.Equal(t, entity.PageHome, out.CurrentPage)
	assert.Empty(t, out.ActiveStoreID)
}
