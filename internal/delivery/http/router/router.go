// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler     *handler.SessionHandler
	CatalogHandler     *handler.CatalogHandler
	EntitlementHandler *handler.EntitlementHandler
	CartHandler        *handler.CartHandler
	CheckoutHandler    *handler.CheckoutHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler     *handler.SessionHandler
	catalogHandler     *handler.CatalogHandler
	entitlementHandler *handler.EntitlementHandler
	cartHandler        *handler.CartHandler
	checkoutHandler    *handler.CheckoutHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:     params.SessionHandler,
		catalogHandler:     params.CatalogHandler,
		entitlementHandler: params.EntitlementHandler,
		cartHandler:        params.CartHandler,
		checkoutHandler:    params.CheckoutHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.sessionHandler.Register)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.GET("/session", r.sessionHandler.GetSession)
		authGroup.GET("/activate/:uid/:token", r.sessionHandler.Activate)
	}

	// Catalog routes
	e.GET("/catalog", r.catalogHandler.List)
	e.GET("/catalog/resolve", r.catalogHandler.Resolve)

	// Entitlement routes
	e.GET("/entitlements", r.entitlementHandler.Get)
	e.POST("/entitlements/refresh", r.entitlementHandler.Refresh)

	// Marketplace landing page, doubles as the payment return target
	e.GET("/marketplace", r.entitlementHandler.Marketplace)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Checkout routes
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Create)
		checkoutGroup.GET("/pending", r.checkoutHandler.Pending)
		checkoutGroup.POST("/resume", r.checkoutHandler.Resume)
		checkoutGroup.POST("/:id/closed", r.checkoutHandler.Closed)
	}
}
