package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/score"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// HotspotHandler handles HTTP requests for the derived hotspot set
type HotspotHandler struct {
	store *store.Store
}

// NewHotspotHandler creates a new hotspot handler
func NewHotspotHandler(s *store.Store) *HotspotHandler {
	return &HotspotHandler{store: s}
}

// hotspotView augments a hotspot with its score breakdown
type hotspotView struct {
	models.Hotspot
	Explanation []string `json:"explanation"`
}

// List handles GET /api/v1/hotspots. Hotspots come back ranked by score;
// IDs are only valid until the next aggregation pass.
func (h *HotspotHandler) List(c *gin.Context) {
	var filter models.HotspotFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	var views []hotspotView
	for _, hs := range h.store.Hotspots() {
		if filter.Category != "" && string(hs.Category) != filter.Category {
			continue
		}
		if filter.MinScore > 0 && hs.Score < filter.MinScore {
			continue
		}
		if filter.MinLat != 0 && hs.CenterLat < filter.MinLat {
			continue
		}
		if filter.MaxLat != 0 && hs.CenterLat > filter.MaxLat {
			continue
		}
		if filter.MinLng != 0 && hs.CenterLng < filter.MinLng {
			continue
		}
		if filter.MaxLng != 0 && hs.CenterLng > filter.MaxLng {
			continue
		}
		views = append(views, hotspotView{
			Hotspot:     hs,
			Explanation: score.Explain(hs.Components),
		})
	}

	response.Success(c, gin.H{
		"data":  views,
		"count": len(views),
	})
}

// Recompute handles POST /api/v1/hotspots/recompute
func (h *HotspotHandler) Recompute(c *gin.Context) {
	h.store.RecomputeHotspots()
	hotspots := h.store.Hotspots()
	response.Success(c, gin.H{
		"data":  hotspots,
		"count": len(hotspots),
	})
}
