package handler

import (
	"log/slog"
	"net/http"

	"turriva/internal/delivery/http/response"
	"turriva/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudioHandler holds dependencies for the redesign studio handlers.
type StudioHandler struct {
	uc     usecase.StudioUsecase
	logger *slog.Logger
}

// NewStudioHandler is the constructor for StudioHandler, injected by Fx.
func NewStudioHandler(uc usecase.StudioUsecase, logger *slog.Logger) *StudioHandler {
	return &StudioHandler{uc: uc, logger: logger}
}

type uploadImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// UploadImage loads a source image into the studio.
func (h *StudioHandler) UploadImage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req uploadImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image data URL is required")
	}

	session, err := h.uc.UploadImage(c.Request().Context(), id, req.Image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ClearImage resets the studio.
func (h *StudioHandler) ClearImage(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.ClearImage(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

type studioOptionsRequest struct {
	RoomType     string `json:"roomType"`
	Style        string `json:"style"`
	Mode         string `json:"mode"`
	CustomPrompt string `json:"customPrompt"`
}

// SetOptions updates the generation controls.
func (h *StudioHandler) SetOptions(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	var req studioOptionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid options input")
	}

	session, err := h.uc.SetOptions(c.Request().Context(), usecase.StudioOptionsInput{
		SessionID:    id,
		RoomType:     req.RoomType,
		Style:        req.Style,
		Mode:         req.Mode,
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// Generate runs one redesign against the image service.
func (h *StudioHandler) Generate(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	output, err := h.uc.Generate(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Design generated")
}

// History returns the session's generations, newest first.
func (h *StudioHandler) History(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	history, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "")
}

// Restore loads a past generation back into the studio.
func (h *StudioHandler) Restore(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	generationID, err := uuid.Parse(c.Param("generationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GENERATION_ID", "Invalid generation id")
	}

	session, err := h.uc.RestoreFromHistory(c.Request().Context(), id, generationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// ToggleProMode switches the generation tier.
func (h *StudioHandler) ToggleProMode(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SESSION_ID", "Invalid session id")
	}

	session, err := h.uc.ToggleProMode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}
