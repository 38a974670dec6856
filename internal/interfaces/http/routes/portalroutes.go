package routes

import (
	"github.com/gin-gonic/gin"

	"quarry/internal/infrastructure/ratelimit"
	portalhandlers "quarry/internal/interfaces/http/handlers/portal"
	"quarry/internal/interfaces/http/middleware"
	"quarry/internal/shared/logger"
)

type PortalRouteConfig struct {
	PortalHandler        *portalhandlers.PortalHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          ratelimit.RateLimiter
	RequestsPerMinute    int
	Logger               logger.Interface
}

func SetupPortalRoutes(engine *gin.Engine, config *PortalRouteConfig) {
	portal := engine.Group("/portal")
	portal.Use(config.AuthMiddleware.RequireAuth())
	portal.Use(config.PermissionMiddleware.Authorize())
	if config.RateLimiter != nil {
		portal.Use(middleware.RateLimit(config.RateLimiter, config.RequestsPerMinute, config.Logger))
	}
	{
		portal.GET("/tickets", config.PortalHandler.ListTickets)
		portal.GET("/tickets/:uid", config.PortalHandler.GetTicket)
		portal.GET("/tickets/:uid/history", config.PortalHandler.ListHistory)
	}
}
