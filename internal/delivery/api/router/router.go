// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Trailing slashes are stripped before routing, so "/addresses/" matches "/addresses".
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	addressesGroup := e.Group("/addresses")
	{
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		// Static segment wins over :id in echo's router.
		addressesGroup.GET("/find", r.addressHandler.FindAddresses)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}
}
