package routes

import (
	"github.com/gin-gonic/gin"

	"relnotes/internal/interfaces/http/handlers"
	"relnotes/internal/interfaces/http/middleware"
)

// ReleaseRouteConfig holds dependencies for release routes.
type ReleaseRouteConfig struct {
	ReleaseHandler *handlers.ReleaseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReleaseRoutes configures release routes. Reads are open (with
// optional identity for visibility), writes are staff-only.
func SetupReleaseRoutes(engine *gin.Engine, cfg *ReleaseRouteConfig) {
	releases := engine.Group("/api/v1/releases")
	{
		releasesRead := releases.Group("")
		releasesRead.Use(cfg.AuthMiddleware.OptionalAuth())
		{
			releasesRead.GET("", cfg.ReleaseHandler.ListReleases)
			releasesRead.GET("/lookup", cfg.ReleaseHandler.LookupRelease)
			releasesRead.GET("/:id", cfg.ReleaseHandler.GetRelease)
			releasesRead.GET("/:id/notes", cfg.ReleaseHandler.GetReleaseNotes)
			releasesRead.GET("/:id/equivalent", cfg.ReleaseHandler.GetEquivalentRelease)
		}

		releasesStaff := releases.Group("")
		releasesStaff.Use(cfg.AuthMiddleware.RequireAuth())
		releasesStaff.Use(cfg.AuthMiddleware.RequireStaff())
		{
			releasesStaff.POST("", cfg.ReleaseHandler.CreateRelease)
			releasesStaff.PUT("/:id", cfg.ReleaseHandler.UpdateRelease)
			releasesStaff.DELETE("/:id", cfg.ReleaseHandler.DeleteRelease)
			releasesStaff.POST("/:id/copy", cfg.ReleaseHandler.CopyRelease)
		}
	}
}
