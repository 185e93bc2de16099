// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearbite/config"
	"nearbite/internal/delivery/http/middleware"
	"nearbite/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	LocationHandler   *handler.LocationHandler
	AutomationHandler *handler.AutomationHandler
	EventHandler      *handler.EventHandler
	VisitorHandler    *handler.VisitorHandler
	PositionHandler   *handler.PositionHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	locationHandler   *handler.LocationHandler
	automationHandler *handler.AutomationHandler
	eventHandler      *handler.EventHandler
	visitorHandler    *handler.VisitorHandler
	positionHandler   *handler.PositionHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		locationHandler:   params.LocationHandler,
		automationHandler: params.AutomationHandler,
		eventHandler:      params.EventHandler,
		visitorHandler:    params.VisitorHandler,
		positionHandler:   params.PositionHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Visitor-facing routes, no admin token required
	visitorGroup := e.Group("/visitors")
	{
		visitorGroup.POST("", r.visitorHandler.RegisterVisitor)
		visitorGroup.GET("/:id", r.visitorHandler.GetVisitor)
		visitorGroup.DELETE("/:id", r.visitorHandler.DeleteVisitor)
	}

	// Position ingest from visitor devices
	e.POST("/positions", r.positionHandler.IngestPosition)

	// Delivery provider callbacks
	e.POST("/hooks/delivery", r.positionHandler.RecordDeliveryOutcome)

	// Admin routes that require authentication
	locationGroup := e.Group("/locations")
	locationGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		locationGroup.POST("", r.locationHandler.CreateLocation)
		locationGroup.GET("", r.locationHandler.ListLocations)
		locationGroup.GET("/:id", r.locationHandler.GetLocation)
		locationGroup.PATCH("/:id", r.locationHandler.UpdateLocation)
		locationGroup.POST("/:id/status", r.locationHandler.SetLocationStatus)
		locationGroup.DELETE("/:id", r.locationHandler.DeleteLocation)

		locationGroup.PUT("/:id/geofence", r.locationHandler.SetGeofence)
		locationGroup.GET("/:id/geofence", r.locationHandler.GetGeofence)
		locationGroup.GET("/:id/qrcode", r.locationHandler.GetOptInQR)

		locationGroup.PUT("/:id/automations/:channel", r.automationHandler.ConfigureAutomation)
		locationGroup.GET("/:id/automations", r.automationHandler.ListAutomations)

		locationGroup.GET("/:id/events", r.eventHandler.ListEvents)
		locationGroup.GET("/:id/stats", r.eventHandler.GetDailySendStats)
	}

	// Middleware validation endpoints, only in environments that enable them
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
