package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. There is no external dependency to probe: the
// store is the local filesystem.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
