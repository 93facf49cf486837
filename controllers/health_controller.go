package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// HealthController reports service and store health
type HealthController struct {
	store *services.Store
}

// NewHealthController creates a health controller
func NewHealthController(store *services.Store) *HealthController {
	return &HealthController{store: store}
}

// HealthCheck handles GET /api/v1/health
func (hc *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Renovation Manager API is running",
	})
}

// StoreStatus handles GET /api/v1/store/status. A degraded collection is
// reported but still answers 200 since the service keeps working in memory.
func (hc *HealthController) StoreStatus(c *gin.Context) {
	status := hc.store.Status()

	degraded := false
	for _, col := range status.Collections {
		if col.Degraded {
			degraded = true
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"degraded": degraded,
		"data":     status,
	})
}
