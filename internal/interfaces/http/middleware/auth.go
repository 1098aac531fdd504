package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"relnotes/internal/infrastructure/auth"
	"relnotes/internal/shared/constants"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid bearer access token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

// OptionalAuth attaches identity claims when a valid bearer token is
// present, and lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err == nil && claims.TokenType == auth.TokenTypeAccess {
			c.Set(constants.ContextKeyUserID, claims.UserID)
			c.Set(constants.ContextKeyUserRole, claims.Role)
		}

		c.Next()
	}
}

// RequireStaff allows only accounts carrying the staff role. It assumes
// RequireAuth already ran on the chain.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleStaff {
			utils.ErrorResponse(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
