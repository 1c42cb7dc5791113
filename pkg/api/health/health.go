package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler for health API
func Handler(signalCtx context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		select {
		// If we receive a sigterm/sigint, we return a 500 code,
		// so that the readiness probe fails and the pod is removed from traffic
		case <-signalCtx.Done():
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Monginis Export API is shutting down",
			})
		default:
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "Monginis Export API is running",
			})
		}
	}
}
