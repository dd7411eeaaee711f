// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushsvc/internal/delivery/api/middleware"
	"pushsvc/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushNotificationsPath is the send, cleanup and liveness endpoint.
const PushNotificationsPath = "/push-notifications"

type RouterParams struct {
	fx.In

	PushHandler         *handler.PushHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pushHandler         *handler.PushHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pushHandler:         params.PushHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every method is accepted here so unsupported ones get the JSON 405 body
	e.Any(PushNotificationsPath, r.pushHandler.Handle)

	e.POST(PushNotificationsPath+"/jobs", r.pushHandler.Enqueue, r.authMiddleware.Authenticate)

	e.GET("/vapid-public-key", r.subscriptionHandler.VAPIDPublicKey)

	subscriptionsGroup := e.Group("/push-subscriptions")
	subscriptionsGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionsGroup.GET("", r.subscriptionHandler.ListSubscriptions)
		subscriptionsGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionsGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
	}
}
