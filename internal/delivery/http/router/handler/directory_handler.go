package handler

import (
	"log/slog"
	"net/http"

	"turriva/internal/delivery/http/response"
	"turriva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for the directory and portfolio handlers.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{uc: uc, logger: logger}
}

// ListProfiles returns the directory profiles matching the query filters.
func (h *DirectoryHandler) ListProfiles(c echo.Context) error {
	output, err := h.uc.FilterProfiles(c.Request().Context(), usecase.ProfileFilter{
		Language: language(c),
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ProfileDetail returns a profile with its portfolio and reviews.
func (h *DirectoryHandler) ProfileDetail(c echo.Context) error {
	profileID, err := int64Param(c, "profileID")
	if err != nil {
		return response.BadRequest(c, "INVALID_PROFILE_ID", "Invalid profile id")
	}

	detail, err := h.uc.ProfileDetail(c.Request().Context(), language(c), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// ListPortfolio returns the portfolio projects matching the query filters.
func (h *DirectoryHandler) ListPortfolio(c echo.Context) error {
	projects, err := h.uc.FilterPortfolio(c.Request().Context(), usecase.PortfolioFilter{
		Language: language(c),
		Category: c.QueryParam("category"),
		Style:    c.QueryParam("style"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// PortfolioDetail returns a portfolio project with its professional.
func (h *DirectoryHandler) PortfolioDetail(c echo.Context) error {
	detail, err := h.uc.PortfolioDetail(c.Request().Context(), language(c), c.Param("projectID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}
