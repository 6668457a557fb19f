package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// DashboardHandler handles HTTP requests for dashboard metrics,
// cooperatives and the demo scenario
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Metrics handles GET /api/v1/dashboard/metrics
func (h *DashboardHandler) Metrics(c *gin.Context) {
	response.Success(c, h.store.ComputeMetrics())
}

// Cooperatives handles GET /api/v1/cooperatives
func (h *DashboardHandler) Cooperatives(c *gin.Context) {
	coops := h.store.Cooperatives()
	response.Success(c, gin.H{
		"data":  coops,
		"count": len(coops),
	})
}

// RunDemo handles POST /api/v1/demo. It injects synthetic detections and
// occurrences around the registered cameras and reaggregates once.
func (h *DashboardHandler) RunDemo(c *gin.Context) {
	result, err := h.store.RunDemo()
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, result)
}
