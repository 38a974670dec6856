package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "quarry/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
	}
}
