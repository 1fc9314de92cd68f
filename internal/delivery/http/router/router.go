// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler    *handler.SearchHandler
	InventoryHandler *handler.InventoryHandler
	RouteHandler     *handler.RouteHandler
	ReviewHandler    *handler.ReviewHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler    *handler.SearchHandler
	inventoryHandler *handler.InventoryHandler
	routeHandler     *handler.RouteHandler
	reviewHandler    *handler.ReviewHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:    params.SearchHandler,
		inventoryHandler: params.InventoryHandler,
		routeHandler:     params.RouteHandler,
		reviewHandler:    params.ReviewHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.POST("/search", r.searchHandler.SearchNearby)
	e.GET("/sellers/:id", r.searchHandler.GetSeller)

	productGroup := e.Group("/products")
	{
		productGroup.POST("/:id/availability", r.inventoryHandler.CheckAvailability)
		productGroup.GET("/:id/reviews", r.reviewHandler.GetProductReviews)
	}

	// Buyer routes that require authentication
	buyerProductGroup := e.Group("/products")
	buyerProductGroup.Use(r.authMiddleware.Authenticate)
	buyerProductGroup.Use(r.authMiddleware.RequireUserType(service.UserTypeBuyer))
	{
		buyerProductGroup.POST("/:id/decrement", r.inventoryHandler.DecrementStock)
		buyerProductGroup.POST("/:id/reviews", r.reviewHandler.AddReview)
	}

	// Seller routes that require authentication and the "seller" user type
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireUserType(service.UserTypeSeller))
	{
		sellerGroup.PUT("/products/:id/inventory", r.inventoryHandler.UpdateInventory)
	}

	// Route planning requires a logged-in buyer
	routeGroup := e.Group("/route-plans")
	routeGroup.Use(r.authMiddleware.Authenticate)
	routeGroup.Use(r.authMiddleware.RequireUserType(service.UserTypeBuyer))
	{
		routeGroup.POST("", r.routeHandler.OptimizeRoute)
		routeGroup.GET("/:id", r.routeHandler.GetRoutePlan)
		routeGroup.POST("/:id/cancel", r.routeHandler.CancelRoutePlan)
		routeGroup.GET("/:id/qr", r.routeHandler.ShareRoutePlanQR)
		routeGroup.POST("/resolve", r.routeHandler.ResolveRoutePlanQR)
	}
}
