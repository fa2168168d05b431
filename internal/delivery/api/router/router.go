// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"houses/internal/delivery/api/router/handler"
	"houses/internal/delivery/middleware"
	"houses/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OperationHandler   *handler.OperationHandler
	ListingHandler     *handler.ListingHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	RateLimiter        *middleware.RateLimiter
	Metrics            *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	operationHandler   *handler.OperationHandler
	listingHandler     *handler.ListingHandler
	identityMiddleware *middleware.IdentityMiddleware
	rateLimiter        *middleware.RateLimiter
	metrics            *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		operationHandler:   params.OperationHandler,
		listingHandler:     params.ListingHandler,
		identityMiddleware: params.IdentityMiddleware,
		rateLimiter:        params.RateLimiter,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Every query and mutation goes through the single operations endpoint.
	// The identity is resolved once here and handed to the dispatcher.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.rateLimiter.Limit)
	apiGroup.Use(r.identityMiddleware.Resolve)
	{
		apiGroup.POST("/operations", r.operationHandler.Execute)
	}

	// Public listing artifacts
	housesGroup := e.Group("/houses")
	{
		housesGroup.GET("/:id/qr", r.listingHandler.GenerateListingQR)
	}
}
