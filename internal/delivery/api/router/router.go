// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crossing/internal/delivery/api/middleware"
	"crossing/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	CrossingHandler *handler.CrossingHandler
	PrivacyHandler  *handler.PrivacyHandler
	InternalHandler *handler.InternalHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	crossingHandler *handler.CrossingHandler
	privacyHandler  *handler.PrivacyHandler
	internalHandler *handler.InternalHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		crossingHandler: params.CrossingHandler,
		privacyHandler:  params.PrivacyHandler,
		internalHandler: params.InternalHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public API, the caller is identified by X-User-Id
	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RequireUser)
	{
		apiV1.POST("/locations", r.locationHandler.Ingest)

		apiV1.GET("/crossings", r.crossingHandler.List)
		apiV1.GET("/crossings/:otherUserId/trail", r.crossingHandler.Trail)

		privacyGroup := apiV1.Group("/privacy")
		privacyGroup.GET("/zones", r.privacyHandler.ListZones)
		privacyGroup.POST("/zones", r.privacyHandler.AddZone)
		privacyGroup.DELETE("/zones/:id", r.privacyHandler.DeleteZone)
		privacyGroup.PUT("/quiet-window", r.privacyHandler.SetQuietWindow)
	}

	// Service-to-service routes, expected to be reachable only inside the cluster
	internalV1 := e.Group("/internal/v1")
	{
		internalV1.POST("/passes", r.internalHandler.RunPass)

		pairsGroup := internalV1.Group("/pairs")
		pairsGroup.POST("/block", r.internalHandler.Block)
		pairsGroup.POST("/unblock", r.internalHandler.Unblock)
		pairsGroup.POST("/tag", r.internalHandler.Tag)

		internalV1.DELETE("/users/:userId", r.internalHandler.DeleteUser)
	}
}
