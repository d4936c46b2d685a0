package handler

import (
	"log/slog"
	"net/http"

	"turriva/internal/delivery/http/response"
	"turriva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for the editorial content handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{uc: uc, logger: logger}
}

// HubFeed returns the professionals' hub feed.
func (h *ContentHandler) HubFeed(c echo.Context) error {
	posts, err := h.uc.HubFeed(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// ListBlogPosts returns the blog articles.
func (h *ContentHandler) ListBlogPosts(c echo.Context) error {
	posts, err := h.uc.ListBlogPosts(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// Inspirations returns the inspirations page payload.
func (h *ContentHandler) Inspirations(c echo.Context) error {
	output, err := h.uc.Inspirations(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
