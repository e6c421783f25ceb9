package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// abortWithError writes the failure envelope and stops the handler chain.
// Every error response carries the same shape: message, date and path.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"message": message,
		"date":    time.Now().UTC().Format(time.RFC3339),
		"path":    c.Request.URL.Path,
	})
}
