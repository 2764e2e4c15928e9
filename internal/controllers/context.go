package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskly-be/internal/middleware"
)

// callerID returns the authenticated user's id from the request context.
// If the auth middleware did not set one, the request is rejected and the
// second return value is false.
func callerID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return "", false
	}
	return userID, true
}

func taskNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Task not found",
	})
}
