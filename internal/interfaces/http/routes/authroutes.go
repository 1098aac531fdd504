package routes

import (
	"github.com/gin-gonic/gin"

	"relnotes/internal/interfaces/http/handlers"
	"relnotes/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)

		authProtected := auth.Group("")
		authProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authProtected.GET("/me", cfg.AuthHandler.Me)
		}
	}
}
