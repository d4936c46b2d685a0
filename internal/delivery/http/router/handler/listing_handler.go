package handler

import (
	"log/slog"
	"net/http"

	"turriva/internal/delivery/http/response"
	"turriva/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for the marketplace handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{uc: uc, logger: logger}
}

// ListProjects returns the job listings.
func (h *ListingHandler) ListProjects(c echo.Context) error {
	projects, err := h.uc.ListProjects(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// ProjectDetail returns a single job listing.
func (h *ListingHandler) ProjectDetail(c echo.Context) error {
	project, err := h.uc.ProjectDetail(c.Request().Context(), language(c), c.Param("projectID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}

type addProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Client      string `json:"client" validate:"required"`
	Budget      string `json:"budget"`
	Deadline    string `json:"deadline"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	City        string `json:"city"`
}

// AddProject posts a job listing.
func (h *ListingHandler) AddProject(c echo.Context) error {
	var req addProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Title, client, category and description are required")
	}

	project, err := h.uc.AddProject(c.Request().Context(), usecase.AddProjectInput{
		Title:       req.Title,
		Client:      req.Client,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Category:    req.Category,
		Description: req.Description,
		City:        req.City,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Job listing posted")
}

// ListLand returns the land listings.
func (h *ListingHandler) ListLand(c echo.Context) error {
	listings, err := h.uc.ListLand(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

type addLandRequest struct {
	OwnerName    string `json:"ownerName" validate:"required"`
	City         string `json:"city" validate:"required"`
	Neighborhood string `json:"neighborhood"`
	Area         int    `json:"area" validate:"required,gt=0"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
}

// AddLand posts a plot through the land owner form.
func (h *ListingHandler) AddLand(c echo.Context) error {
	var req addLandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid land listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Owner name, city and a positive area are required")
	}

	listing, err := h.uc.AddLandListing(c.Request().Context(), usecase.AddLandInput{
		OwnerName:    req.OwnerName,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Area:         req.Area,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Land listing posted")
}

// ListProperties returns the real-estate market listings.
func (h *ListingHandler) ListProperties(c echo.Context) error {
	listings, err := h.uc.ListProperties(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// PropertyDetail returns a property listing with its developer.
func (h *ListingHandler) PropertyDetail(c echo.Context) error {
	detail, err := h.uc.PropertyDetail(c.Request().Context(), language(c), c.Param("propertyID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}
