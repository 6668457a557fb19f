package store

import (
	"math"

	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/stats"
)

// ComputeMetrics derives the dashboard figures from the current
// collections. Pure read: triggers no recompute and mutates nothing.
func (s *Store) ComputeMetrics() models.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	m := models.DashboardMetrics{
		TotalOccurrences: len(s.occurrences),
	}

	var weights []float64
	var resolutionHours []float64
	for _, o := range s.occurrences {
		if o.Status != models.OccurrenceResolved {
			m.OpenOccurrences++
			continue
		}
		m.ResolvedOccurrences++

		var mid float64
		if o.WeightKgMin != nil {
			mid += *o.WeightKgMin
		}
		if o.WeightKgMax != nil {
			mid += *o.WeightKgMax
		}
		weights = append(weights, mid/2)

		if o.WasteType.Recyclable() {
			m.RecoveredMaterials++
		}
		if o.ResolvedAt != nil {
			resolutionHours = append(resolutionHours, o.ResolvedAt.Sub(o.CreatedAt).Hours())
		}
	}
	m.CollectedWeightKg = int(math.Round(stats.Sum(weights)))
	m.AvgResolutionHours = stats.Round1(stats.Mean(resolutionHours))

	for _, h := range s.hotspots {
		if h.Status == models.CellActive {
			m.ActiveHotspots++
		}
	}

	y, mo, d := now.Date()
	for _, r := range s.routes {
		ry, rmo, rd := r.CreatedAt.Date()
		if ry == y && rmo == mo && rd == d {
			m.RoutesToday++
		}
	}

	for _, a := range s.alerts {
		if a.Status == models.AlertNew {
			m.NewAlerts++
		}
	}

	return m
}
