package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonebook/src/core/ports"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	healthService ports.HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService ports.HealthChecker) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports that the process is serving requests.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// DetailedHealth returns detailed health status including the database.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	c.JSON(http.StatusOK, status)
}
