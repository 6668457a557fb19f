package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// CameraHandler handles HTTP requests for monitoring cameras
type CameraHandler struct {
	store *store.Store
}

// NewCameraHandler creates a new camera handler
func NewCameraHandler(s *store.Store) *CameraHandler {
	return &CameraHandler{store: s}
}

// List handles GET /api/v1/cameras
func (h *CameraHandler) List(c *gin.Context) {
	cameras := h.store.Cameras()
	response.Success(c, gin.H{
		"data":  cameras,
		"count": len(cameras),
	})
}

// Add handles POST /api/v1/cameras
func (h *CameraHandler) Add(c *gin.Context) {
	var req models.AddCameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	camera, err := h.store.AddCamera(req.Latitude, req.Longitude, req.Name)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, camera)
}

// Remove handles DELETE /api/v1/cameras/:id. Past detections from the
// camera are kept.
func (h *CameraHandler) Remove(c *gin.Context) {
	if err := h.store.RemoveCamera(c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": c.Param("id")})
}
