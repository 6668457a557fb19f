package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// DetectionHandler handles HTTP requests for camera detections
type DetectionHandler struct {
	store *store.Store
}

// NewDetectionHandler creates a new detection handler
func NewDetectionHandler(s *store.Store) *DetectionHandler {
	return &DetectionHandler{store: s}
}

// List handles GET /api/v1/detections
func (h *DetectionHandler) List(c *gin.Context) {
	detections := h.store.Detections()
	response.Success(c, gin.H{
		"data":  detections,
		"count": len(detections),
	})
}

// Inject handles POST /api/v1/detections
func (h *DetectionHandler) Inject(c *gin.Context) {
	var req models.InjectDetectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	det, err := h.store.InjectDetection(req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, det)
}

// InjectBulk handles POST /api/v1/detections/bulk
func (h *DetectionHandler) InjectBulk(c *gin.Context) {
	var req models.BulkDetectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.store.InjectBulkDetections(req.Count)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{
		"data":  created,
		"count": len(created),
	})
}
