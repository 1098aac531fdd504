package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	releaseUC "relnotes/internal/application/release/usecases"
	userUC "relnotes/internal/application/user/usecases"
	"relnotes/internal/infrastructure/auth"
	"relnotes/internal/infrastructure/cache"
	"relnotes/internal/infrastructure/config"
	"relnotes/internal/infrastructure/repository"
	"relnotes/internal/infrastructure/services"
	"relnotes/internal/interfaces/http/handlers"
	"relnotes/internal/interfaces/http/middleware"
	"relnotes/internal/interfaces/http/routes"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/markdown"
)

// Router wires repositories, use cases, and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	releaseHandler *handlers.ReleaseHandler
	noteHandler    *handlers.NoteHandler
	authHandler    *handlers.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// tokenIssuerAdapter bridges the JWT service to the application-layer
// TokenIssuer interface.
type tokenIssuerAdapter struct {
	*auth.JWTService
}

func (a *tokenIssuerAdapter) Generate(userID uint, username, role string) (*userUC.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, username, role)
	if err != nil {
		return nil, err
	}
	return &userUC.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	releaseRepo := repository.NewReleaseRepository(db, log)
	noteRepo := repository.NewNoteRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	markdownSvc := markdown.NewService()
	screenshots := services.NewScreenshotStorage(cfg.Server.MediaDir, log)

	var projCache releaseUC.ProjectionCache
	var invalidator releaseUC.ProjectionInvalidator
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pc := cache.NewProjectionCache(client)
		projCache = pc
		invalidator = pc
	}

	releaseHandler := handlers.NewReleaseHandler(
		releaseUC.NewCreateReleaseUseCase(releaseRepo, log),
		releaseUC.NewUpdateReleaseUseCase(releaseRepo, invalidator, log),
		releaseUC.NewGetReleaseUseCase(releaseRepo, log),
		releaseUC.NewListReleasesUseCase(releaseRepo, log),
		releaseUC.NewDeleteReleaseUseCase(releaseRepo, invalidator, log),
		releaseUC.NewCopyReleaseUseCase(releaseRepo, invalidator, log),
		releaseUC.NewGetReleaseNotesUseCase(releaseRepo, noteRepo, markdownSvc, projCache, log),
		releaseUC.NewGetEquivalentReleaseUseCase(releaseRepo, cfg.Server.DevMode, log),
		cfg.Server.DevMode,
	)

	noteHandler := handlers.NewNoteHandler(
		releaseUC.NewCreateNoteUseCase(noteRepo, releaseRepo, invalidator, log),
		releaseUC.NewUpdateNoteUseCase(noteRepo, invalidator, log),
		releaseUC.NewGetNoteUseCase(noteRepo, log),
		releaseUC.NewListNotesUseCase(noteRepo, log),
		releaseUC.NewDeleteNoteUseCase(noteRepo, invalidator, log),
		releaseUC.NewLinkNoteUseCase(noteRepo, releaseRepo, invalidator, log),
		releaseUC.NewUploadNoteImageUseCase(noteRepo, screenshots, invalidator, log),
	)

	authHandler := handlers.NewAuthHandler(
		userUC.NewLoginUseCase(userRepo, hasher, &tokenIssuerAdapter{jwtService}, log),
		userUC.NewGetUserUseCase(userRepo, log),
	)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		releaseHandler: releaseHandler,
		noteHandler:    noteHandler,
		authHandler:    authHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
	}
}

// SetupRoutes mounts every route group plus health and media endpoints.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded screenshots are served straight from the media directory.
	r.engine.Static("/media", r.cfg.Server.MediaDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReleaseRoutes(r.engine, &routes.ReleaseRouteConfig{
		ReleaseHandler: r.releaseHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupNoteRoutes(r.engine, &routes.NoteRouteConfig{
		NoteHandler:    r.noteHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine exposes the underlying gin engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
