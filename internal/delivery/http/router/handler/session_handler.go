package handler

import (
	"log/slog"
	"net/http"

	"turriva/internal/delivery/http/response"
	"turriva/internal/domain/entity"
	"turriva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// CreateSession starts a new visitor session.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	session, err := h.uc.CreateSession(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Session created")
}

// GetSession returns the session's current state.
func (h *SessionHandler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.GetSession(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

type setPageRequest struct {
	Page string `json:"page" validate:"required"`
}

// SetPage navigates the session to a page.
func (h *SessionHandler) SetPage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req setPageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Page is required")
	}

	session, err := h.uc.SetCurrentPage(c.Request().Context(), id, req.Page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

type setLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// SetLanguage switches the session's content language.
func (h *SessionHandler) SetLanguage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req setLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Language is required")
	}

	session, err := h.uc.SetLanguage(c.Request().Context(), id, entity.Language(req.Language))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ToggleTheme flips the session between light and dark.
func (h *SessionHandler) ToggleTheme(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.ToggleTheme(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

type openAuthModalRequest struct {
	View     string `json:"view"`
	Redirect string `json:"redirect"`
}

// OpenAuthModal opens the auth modal on the requested view.
func (h *SessionHandler) OpenAuthModal(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req openAuthModalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid auth modal input")
	}

	session, err := h.uc.OpenAuthModal(c.Request().Context(), id, entity.AuthModalView(req.View), req.Redirect)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// CloseAuthModal dismisses the auth modal.
func (h *SessionHandler) CloseAuthModal(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.CloseAuthModal(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates the visitor against the stored accounts.
func (h *SessionHandler) Login(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		SessionID: id,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

type signupStoreRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type signupRequest struct {
	Name     string              `json:"name" validate:"required"`
	Email    string              `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required"`
	Role     string              `json:"role" validate:"required"`
	Store    *signupStoreRequest `json:"store"`
}

// Signup registers a new account and logs the visitor in.
func (h *SessionHandler) Signup(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Name, email, password and role are required")
	}

	input := usecase.SignupInput{
		SessionID: id,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      entity.Role(req.Role),
	}
	if req.Store != nil {
		input.Store = &usecase.StoreSignupInput{
			Name:        req.Store.Name,
			Description: req.Store.Description,
			ImageURL:    req.Store.ImageURL,
		}
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered")
}

// Logout detaches the account from the session.
func (h *SessionHandler) Logout(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.Logout(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Logout successful")
}

// ViewProject opens the job listing detail page.
func (h *SessionHandler) ViewProject(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.ViewProject(c.Request().Context(), id, c.Param("projectID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ViewProfile opens the directory profile detail page.
func (h *SessionHandler) ViewProfile(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	profileID, err := int64Param(c, "profileID")
	if err != nil {
		return response.BadRequest(c, "INVALID_PROFILE_ID", "Invalid profile id")
	}

	session, err := h.uc.ViewProfile(c.Request().Context(), id, profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ViewStore opens the store detail page.
func (h *SessionHandler) ViewStore(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.ViewStore(c.Request().Context(), id, c.Param("storeID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}
