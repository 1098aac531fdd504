package routes

import (
	"github.com/gin-gonic/gin"

	"relnotes/internal/interfaces/http/handlers"
	"relnotes/internal/interfaces/http/middleware"
)

// NoteRouteConfig holds dependencies for note routes.
type NoteRouteConfig struct {
	NoteHandler    *handlers.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupNoteRoutes configures note routes.
func SetupNoteRoutes(engine *gin.Engine, cfg *NoteRouteConfig) {
	notes := engine.Group("/api/v1/notes")
	{
		notesRead := notes.Group("")
		notesRead.Use(cfg.AuthMiddleware.OptionalAuth())
		{
			notesRead.GET("", cfg.NoteHandler.ListNotes)
			notesRead.GET("/:id", cfg.NoteHandler.GetNote)
		}

		notesStaff := notes.Group("")
		notesStaff.Use(cfg.AuthMiddleware.RequireAuth())
		notesStaff.Use(cfg.AuthMiddleware.RequireStaff())
		{
			notesStaff.POST("", cfg.NoteHandler.CreateNote)
			notesStaff.PUT("/:id", cfg.NoteHandler.UpdateNote)
			notesStaff.DELETE("/:id", cfg.NoteHandler.DeleteNote)
			notesStaff.POST("/:id/releases/:releaseID", cfg.NoteHandler.LinkNote)
			notesStaff.DELETE("/:id/releases/:releaseID", cfg.NoteHandler.UnlinkNote)
			notesStaff.POST("/:id/image", cfg.NoteHandler.UploadImage)
		}
	}
}
