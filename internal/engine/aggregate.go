// Package engine derives hotspots from the raw occurrence/detection
// collections and plans cleanup routes over them. Everything here is a
// pure reader: inputs are never mutated, and recomputation replaces the
// previous hotspot set wholesale.
package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/score"
	"github.com/scslimpo/hotspots-backend-go/internal/spatial"
)

// MinHotspotScore is the emission threshold. Cells scoring 5 or below
// produce no hotspot; the bound is exclusive.
const MinHotspotScore = 5

type cellBucket struct {
	occurrences []models.Occurrence
	detections  []models.Detection
}

// Recompute buckets every occurrence and detection into its grid cell,
// scores each cell and returns the ranked hotspot set.
//
// Hotspot IDs are regenerated on every pass; callers holding a hotspot
// across recomputes must re-resolve it by grid key. cellStatus is the
// persisted per-cell operational status overlay, merged into each fresh
// hotspot (cells without an entry default to active).
func Recompute(occurrences []models.Occurrence, detections []models.Detection, cellStatus map[string]models.CellStatus, now time.Time) []models.Hotspot {
	cells := make(map[string]*cellBucket)

	for _, o := range occurrences {
		key := spatial.GridKey(o.Latitude, o.Longitude)
		bucket, ok := cells[key]
		if !ok {
			bucket = &cellBucket{}
			cells[key] = bucket
		}
		bucket.occurrences = append(bucket.occurrences, o)
	}

	for _, d := range detections {
		key := spatial.GridKey(d.Latitude, d.Longitude)
		bucket, ok := cells[key]
		if !ok {
			bucket = &cellBucket{}
			cells[key] = bucket
		}
		bucket.detections = append(bucket.detections, d)
	}

	var hotspots []models.Hotspot
	for key, bucket := range cells {
		var open []models.Occurrence
		for _, o := range bucket.occurrences {
			if o.Status != models.OccurrenceResolved {
				open = append(open, o)
			}
		}

		// A cell with only resolved occurrences and no detections is done
		if len(open) == 0 && len(bucket.detections) == 0 {
			continue
		}

		lastCleanup := latestResolution(bucket.occurrences)

		components := score.Components(open, bucket.detections, lastCleanup, now)
		final := score.Final(components)
		if final <= MinHotspotScore {
			continue
		}

		centerLat, centerLng, err := spatial.KeyToCenter(key)
		if err != nil {
			continue
		}

		status := models.CellActive
		if s, ok := cellStatus[key]; ok {
			status = s
		}

		occurrenceIDs := make([]string, 0, len(bucket.occurrences))
		for _, o := range bucket.occurrences {
			occurrenceIDs = append(occurrenceIDs, o.ID)
		}
		detectionIDs := make([]string, 0, len(bucket.detections))
		for _, d := range bucket.detections {
			detectionIDs = append(detectionIDs, d.ID)
		}

		hotspots = append(hotspots, models.Hotspot{
			ID:            uuid.NewString(),
			GridKey:       key,
			CenterLat:     centerLat,
			CenterLng:     centerLng,
			Score:         final,
			Category:      score.Categorize(final),
			Components:    components,
			Status:        status,
			OccurrenceIDs: occurrenceIDs,
			DetectionIDs:  detectionIDs,
			LastCleanup:   lastCleanup,
		})
	}

	// Score descending; grid key breaks ties so consecutive recomputes of
	// the same snapshot rank identically despite map iteration order
	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].Score != hotspots[j].Score {
			return hotspots[i].Score > hotspots[j].Score
		}
		return hotspots[i].GridKey < hotspots[j].GridKey
	})

	return hotspots
}

// latestResolution returns the most recent resolution timestamp among the
// cell's resolved occurrences, or nil when none have been resolved
func latestResolution(occurrences []models.Occurrence) *time.Time {
	var latest *time.Time
	for _, o := range occurrences {
		if o.ResolvedAt == nil {
			continue
		}
		if latest == nil || o.ResolvedAt.After(*latest) {
			t := *o.ResolvedAt
			latest = &t
		}
	}
	return latest
}
