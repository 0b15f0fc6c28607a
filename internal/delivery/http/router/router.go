// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crm/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	AddressHandler  *handler.AddressHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	addressHandler  *handler.AddressHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		addressHandler:  params.AddressHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Anything outside these routes falls through to echo's 404, which the
// error handler renders as a generic not-found body.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	customerGroup := api.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PATCH("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
	}

	addressGroup := api.Group("/addresses")
	{
		addressGroup.POST("", r.addressHandler.Create)
		addressGroup.PATCH("/:id", r.addressHandler.Update)
	}
}
