package handlers

import (
	"net/http"
	"time"

	"bagages/internal/config"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and liveness endpoints.
type SystemHandler struct {
	Env config.Env
}

// GET /health
func (h SystemHandler) Health(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"error":     "base de données injoignable",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": h.Env.AppEnv,
	})
}
