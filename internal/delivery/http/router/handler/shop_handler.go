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

// ShopHandler holds dependencies for the shop handlers.
type ShopHandler struct {
	directoryUC usecase.DirectoryUsecase
	listingUC   usecase.ListingUsecase
	logger      *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(directoryUC usecase.DirectoryUsecase, listingUC usecase.ListingUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{directoryUC: directoryUC, listingUC: listingUC, logger: logger}
}

// ListStores returns the shop's stores.
func (h *ShopHandler) ListStores(c echo.Context) error {
	stores, err := h.directoryUC.ListStores(c.Request().Context(), language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

// StoreDetail returns a store with its products.
func (h *ShopHandler) StoreDetail(c echo.Context) error {
	detail, err := h.directoryUC.StoreDetail(c.Request().Context(), language(c), c.Param("storeID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// ListProducts returns the shop products matching the query filters.
func (h *ShopHandler) ListProducts(c echo.Context) error {
	products, err := h.directoryUC.FilterProducts(c.Request().Context(), usecase.ProductFilter{
		Language: language(c),
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

type addProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Price         string   `json:"price" validate:"required"`
	OriginalPrice string   `json:"originalPrice"`
	ImageURL      string   `json:"imageUrl"`
	Category      string   `json:"category" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	Subcategory   string   `json:"subcategory"`
	FileFormats   []string `json:"fileFormats"`
}

// AddProduct lists a product under the authenticated vendor's store.
func (h *ShopHandler) AddProduct(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Name, price, category and type are required")
	}

	product, err := h.listingUC.AddProduct(c.Request().Context(), usecase.AddProductInput{
		UserID:        userID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Type:          req.Type,
		Subcategory:   req.Subcategory,
		FileFormats:   req.FileFormats,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product listed")
}
