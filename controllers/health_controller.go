package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheckController answers liveness probes for the visitor register
type HealthCheckController struct {
	startedAt time.Time
}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{startedAt: time.Now()}
}

// Ping reports the service name, status and uptime
// @Summary      Health Check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "visitor-register",
		"status":  "healthy",
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
