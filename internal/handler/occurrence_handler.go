package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// OccurrenceHandler handles HTTP requests for waste occurrences
type OccurrenceHandler struct {
	store *store.Store
}

// NewOccurrenceHandler creates a new occurrence handler
func NewOccurrenceHandler(s *store.Store) *OccurrenceHandler {
	return &OccurrenceHandler{store: s}
}

// List handles GET /api/v1/occurrences
func (h *OccurrenceHandler) List(c *gin.Context) {
	var filter models.OccurrenceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	occurrences := h.store.Occurrences()
	if filter.Status != "" || filter.WasteType != "" {
		filtered := occurrences[:0]
		for _, o := range occurrences {
			if filter.Status != "" && string(o.Status) != filter.Status {
				continue
			}
			if filter.WasteType != "" && string(o.WasteType) != filter.WasteType {
				continue
			}
			filtered = append(filtered, o)
		}
		occurrences = filtered
	}

	response.Success(c, gin.H{
		"data":  occurrences,
		"count": len(occurrences),
	})
}

// Register handles POST /api/v1/occurrences
func (h *OccurrenceHandler) Register(c *gin.Context) {
	var req models.RegisterOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	occ, err := h.store.RegisterOccurrence(req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, occ)
}

// Edit handles PATCH /api/v1/occurrences/:id
func (h *OccurrenceHandler) Edit(c *gin.Context) {
	var req models.EditOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	occ, err := h.store.EditOccurrence(c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, occ)
}

// Delete handles DELETE /api/v1/occurrences/:id
func (h *OccurrenceHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteOccurrence(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// UpdateStatus handles PATCH /api/v1/occurrences/:id/status
func (h *OccurrenceHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	occ, err := h.store.UpdateOccurrenceStatus(c.Param("id"), models.OccurrenceStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, occ)
}

// Finalize handles POST /api/v1/occurrences/:id/finalize
func (h *OccurrenceHandler) Finalize(c *gin.Context) {
	var req models.FinalizeOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	occ, err := h.store.FinalizeOccurrence(c.Param("id"), req.WeightKgMin, req.WeightKgMax)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, occ)
}
