// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"turriva/internal/delivery/http/middleware"
	"turriva/internal/delivery/http/router/handler"
	"turriva/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler   *handler.SessionHandler
	StudioHandler    *handler.StudioHandler
	DirectoryHandler *handler.DirectoryHandler
	ShopHandler      *handler.ShopHandler
	ListingHandler   *handler.ListingHandler
	ContentHandler   *handler.ContentHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler   *handler.SessionHandler
	studioHandler    *handler.StudioHandler
	directoryHandler *handler.DirectoryHandler
	shopHandler      *handler.ShopHandler
	listingHandler   *handler.ListingHandler
	contentHandler   *handler.ContentHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:   params.SessionHandler,
		studioHandler:    params.StudioHandler,
		directoryHandler: params.DirectoryHandler,
		shopHandler:      params.ShopHandler,
		listingHandler:   params.ListingHandler,
		contentHandler:   params.ContentHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle, navigation, and UI state
	e.POST("/sessions", r.sessionHandler.CreateSession)
	sessionGroup := e.Group("/sessions/:id")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.PUT("/page", r.sessionHandler.SetPage)
		sessionGroup.PUT("/language", r.sessionHandler.SetLanguage)
		sessionGroup.POST("/theme/toggle", r.sessionHandler.ToggleTheme)
		sessionGroup.POST("/auth-modal", r.sessionHandler.OpenAuthModal)
		sessionGroup.DELETE("/auth-modal", r.sessionHandler.CloseAuthModal)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/signup", r.sessionHandler.Signup)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.POST("/view/projects/:projectID", r.sessionHandler.ViewProject)
		sessionGroup.POST("/view/profiles/:profileID", r.sessionHandler.ViewProfile)
		sessionGroup.POST("/view/stores/:storeID", r.sessionHandler.ViewStore)

		// Redesign studio rides on the session
		studioGroup := sessionGroup.Group("/studio")
		studioGroup.POST("/image", r.studioHandler.UploadImage)
		studioGroup.DELETE("/image", r.studioHandler.ClearImage)
		studioGroup.PUT("/options", r.studioHandler.SetOptions)
		studioGroup.POST("/generate", r.studioHandler.Generate)
		studioGroup.GET("/history", r.studioHandler.History)
		studioGroup.POST("/history/:generationID/restore", r.studioHandler.Restore)
		studioGroup.POST("/pro/toggle", r.studioHandler.ToggleProMode)
	}

	// Professional directory and portfolio
	directoryGroup := e.Group("/directory")
	{
		directoryGroup.GET("/profiles", r.directoryHandler.ListProfiles)
		directoryGroup.GET("/profiles/:profileID", r.directoryHandler.ProfileDetail)
	}
	e.GET("/portfolio", r.directoryHandler.ListPortfolio)
	e.GET("/portfolio/:projectID", r.directoryHandler.PortfolioDetail)

	// Shop
	shopGroup := e.Group("/shop")
	{
		shopGroup.GET("/stores", r.shopHandler.ListStores)
		shopGroup.GET("/stores/:storeID", r.shopHandler.StoreDetail)
		shopGroup.GET("/products", r.shopHandler.ListProducts)
		shopGroup.POST("/products", r.shopHandler.AddProduct,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(string(entity.RoleVendor)))
	}

	// Marketplaces
	e.GET("/projects", r.listingHandler.ListProjects)
	e.GET("/projects/:projectID", r.listingHandler.ProjectDetail)
	e.POST("/projects", r.listingHandler.AddProject, r.authMiddleware.Authenticate)
	e.GET("/land", r.listingHandler.ListLand)
	e.POST("/land", r.listingHandler.AddLand)
	e.GET("/properties", r.listingHandler.ListProperties)
	e.GET("/properties/:propertyID", r.listingHandler.PropertyDetail)

	// Editorial content
	e.GET("/hub/posts", r.contentHandler.HubFeed)
	e.GET("/blog/posts", r.contentHandler.ListBlogPosts)
	e.GET("/inspirations", r.contentHandler.Inspirations)
}
