// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dispatch/internal/delivery/http/middleware"
	"dispatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DispatchHandler     *handler.DispatchHandler
	PushHandler         *handler.PushHandler
	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dispatchHandler     *handler.DispatchHandler
	pushHandler         *handler.PushHandler
	subscriptionHandler *handler.SubscriptionHandler
	notificationHandler *handler.NotificationHandler
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dispatchHandler:     params.DispatchHandler,
		pushHandler:         params.PushHandler,
		subscriptionHandler: params.SubscriptionHandler,
		notificationHandler: params.NotificationHandler,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Dispatch routes
	dispatchGroup := e.Group("/dispatch")
	{
		// The broadcast trigger is rate limited per caller
		dispatchGroup.POST("/orders/:orderId/broadcast", r.dispatchHandler.Broadcast, r.rateLimitMiddleware.Limit)
		dispatchGroup.GET("/orders/:orderId/offers", r.dispatchHandler.ListOffers)
	}

	// In-app notification routes
	driverGroup := e.Group("/drivers")
	{
		driverGroup.GET("/:driverId/notifications", r.notificationHandler.ListByDriver)
	}

	// Push routes
	pushGroup := e.Group("/push")
	{
		pushGroup.POST("/send", r.pushHandler.Send)
	}

	// Subscription routes
	subscriptionGroup := e.Group("/subscriptions")
	{
		subscriptionGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
	}
}
