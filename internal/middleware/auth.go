package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskly-be/internal/jwt"
)

// Context keys set by AuthMiddleware for downstream handlers
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware returns a Gin middleware that requires a valid
// `Authorization: Bearer <token>` header. On success, the caller's user id
// and email are stored in the request context; on any failure (missing
// header, wrong scheme, invalid or expired token) the request is rejected
// with the same 401 response.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(c)
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Unauthorized",
	})
}

// UserID extracts the authenticated user's id from the context. The second
// return value is false if the auth middleware did not run.
func UserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	userID, ok := id.(string)
	return userID, ok && userID != ""
}
