package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// AlertHandler handles HTTP requests for collection alerts
type AlertHandler struct {
	store *store.Store
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(s *store.Store) *AlertHandler {
	return &AlertHandler{store: s}
}

// List handles GET /api/v1/alerts
func (h *AlertHandler) List(c *gin.Context) {
	alerts := h.store.Alerts()
	response.Success(c, gin.H{
		"data":  alerts,
		"count": len(alerts),
	})
}

// UpdateStatus handles PATCH /api/v1/alerts/:id/status
func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateAlertStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	alert, err := h.store.UpdateAlertStatus(c.Param("id"), req.Status, req.CooperativeID)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, alert)
}
