package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for collection routes
type RouteHandler struct {
	store *store.Store
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(s *store.Store) *RouteHandler {
	return &RouteHandler{store: s}
}

// List handles GET /api/v1/routes
func (h *RouteHandler) List(c *gin.Context) {
	routes := h.store.Routes()
	response.Success(c, gin.H{
		"data":  routes,
		"count": len(routes),
	})
}

// Create handles POST /api/v1/routes. Stop order follows the caller's
// selection; hotspot IDs from a previous aggregation are dropped silently.
func (h *RouteHandler) Create(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	route, err := h.store.CreateRoute(req.HotspotIDs, c.Query("requester_id"))
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, route)
}

// UpdateStatus handles PATCH /api/v1/routes/:id/status
func (h *RouteHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	route, err := h.store.UpdateRouteStatus(c.Param("id"), models.RouteStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, route)
}
