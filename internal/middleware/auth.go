package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nailnav/nailnav/internal/auth"
	"github.com/nailnav/nailnav/internal/config"
	"github.com/nailnav/nailnav/internal/httperr"
)

const (
	ContextUserID        = "userID"
	ContextUserEmail     = "userEmail"
	ContextUserRole      = "userRole"
	ContextApplicationID = "applicationID"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "")
			c.Abort()
			return
		}

		claims, err := auth.Parse(cfg.JWTSecret, parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token_payload", "")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextApplicationID, claims.ApplicationID)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			httperr.Forbidden(c, "forbidden", "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user set by AuthMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
