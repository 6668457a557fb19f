package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/spatial"
)

// BuildRoute orders the caller-selected hotspots into a sequential cleanup
// route. IDs that no longer resolve against the current hotspot set are
// dropped silently: selections are snapshots and aggregation may have
// replaced the set since the caller listed it.
//
// Each stop's ETA is computed over the cumulative walking distance from
// the route start, not the leg from the previous stop. The returned grid
// keys identify the visited cells so the caller can persist their
// operational status as in_service.
func BuildRoute(hotspotIDs []string, current []models.Hotspot, requesterID string, now time.Time) (models.Route, []string) {
	byID := make(map[string]models.Hotspot, len(current))
	for _, h := range current {
		byID[h.ID] = h
	}

	var resolved []models.Hotspot
	for _, id := range hotspotIDs {
		if h, ok := byID[id]; ok {
			resolved = append(resolved, h)
		}
	}

	stops := make([]models.RouteStop, 0, len(resolved))
	gridKeys := make([]string, 0, len(resolved))
	var cumulativeKm float64
	for i, h := range resolved {
		if i > 0 {
			prev := resolved[i-1]
			cumulativeKm += spatial.HaversineKm(prev.CenterLat, prev.CenterLng, h.CenterLat, h.CenterLng)
		}
		stops = append(stops, models.RouteStop{
			HotspotID:  h.ID,
			GridKey:    h.GridKey,
			Order:      i + 1,
			ETAMinutes: spatial.ETAMinutes(cumulativeKm),
		})
		gridKeys = append(gridKeys, h.GridKey)
	}

	return models.Route{
		ID:        uuid.NewString(),
		CreatedAt: now,
		CreatedBy: requesterID,
		Stops:     stops,
		Status:    models.RoutePlanned,
	}, gridKeys
}
