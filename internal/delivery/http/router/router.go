// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodcart/internal/delivery/http/router/handler"
	"foodcart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
	Metrics        *metrics.ResolverCollector `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	catalogHandler *handler.CatalogHandler
	metrics        *metrics.ResolverCollector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		catalogHandler: params.CatalogHandler,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	managerGroup := e.Group("/manager")
	{
		managerGroup.GET("/orders", r.orderHandler.ListOrders)
		managerGroup.POST("/orders/:id/assign", r.orderHandler.AssignRestaurant)
		managerGroup.GET("/products", r.catalogHandler.ProductAvailability)
		managerGroup.GET("/restaurants", r.catalogHandler.ListRestaurants)
	}
}
