package score

import (
	"fmt"
	"math"
	"time"

	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

// Weight configuration for score components. Weights sum to 1.0.
const (
	WeightRecurrence       = 0.30
	WeightCameraDetections = 0.25
	WeightTimeSinceCleanup = 0.20
	WeightEstimatedVolume  = 0.25
)

// Category thresholds: a score below the bound falls in the band
const (
	ThresholdLow    = 25
	ThresholdMedium = 50
	ThresholdHigh   = 75
)

// NeverCleanedPenalty is the fixed time component for cells with no
// recorded cleanup
const NeverCleanedPenalty = 50

// PointsPerDaySinceCleanup saturates the time component at ~30 days
const PointsPerDaySinceCleanup = 3.33

// Recurrence scores the number of open occurrences in a cell.
// Caps at 100 points for 10 or more open occurrences.
func Recurrence(occurrences []models.Occurrence) float64 {
	open := 0
	for _, o := range occurrences {
		if o.Status != models.OccurrenceResolved {
			open++
		}
	}
	return math.Min(float64(open)*10, 100)
}

// CameraDetections scores the summed confidence of a cell's detections
func CameraDetections(detections []models.Detection) float64 {
	if len(detections) == 0 {
		return 0
	}
	var sum float64
	for _, d := range detections {
		sum += d.Confidence
	}
	return math.Min(sum*20, 100)
}

// TimeSinceCleanup scores the whole days elapsed since the cell was last
// cleaned. Cells never cleaned get a fixed default penalty.
func TimeSinceCleanup(lastCleanup *time.Time, now time.Time) float64 {
	if lastCleanup == nil {
		return NeverCleanedPenalty
	}
	days := math.Floor(now.Sub(*lastCleanup).Hours() / 24)
	return math.Min(days*PointsPerDaySinceCleanup, 100)
}

// EstimatedVolume scores the summed volume-band multipliers of a cell's
// occurrences; 0 when the cell has none.
func EstimatedVolume(occurrences []models.Occurrence) float64 {
	if len(occurrences) == 0 {
		return 0
	}
	var total float64
	for _, o := range occurrences {
		total += models.VolumeMultiplier[o.VolumeBand]
	}
	return math.Min(total*10, 100)
}

// Components computes all four sub-scores for a cell
func Components(occurrences []models.Occurrence, detections []models.Detection, lastCleanup *time.Time, now time.Time) models.ScoreComponents {
	return models.ScoreComponents{
		Recurrence:       Recurrence(occurrences),
		CameraDetections: CameraDetections(detections),
		TimeSinceCleanup: TimeSinceCleanup(lastCleanup, now),
		EstimatedVolume:  EstimatedVolume(occurrences),
	}
}

// Final combines the components into a single 0-100 score
func Final(c models.ScoreComponents) int {
	weighted := c.Recurrence*WeightRecurrence +
		c.CameraDetections*WeightCameraDetections +
		c.TimeSinceCleanup*WeightTimeSinceCleanup +
		c.EstimatedVolume*WeightEstimatedVolume
	return int(math.Round(math.Min(weighted, 100)))
}

// Categorize maps a score into its priority band
func Categorize(score int) models.ScoreCategory {
	switch {
	case score < ThresholdLow:
		return models.CategoryLow
	case score < ThresholdMedium:
		return models.CategoryMedium
	case score < ThresholdHigh:
		return models.CategoryHigh
	default:
		return models.CategoryCritical
	}
}

// Explain renders the component breakdown as human-readable lines.
// Recurrence and camera lines are omitted when they contribute nothing;
// the time component always has a value so its line is always present.
func Explain(c models.ScoreComponents) []string {
	var lines []string
	if c.Recurrence > 0 {
		lines = append(lines, fmt.Sprintf("Recurrence: %.0f pts (%.0f%% weight)", c.Recurrence, WeightRecurrence*100))
	}
	if c.CameraDetections > 0 {
		lines = append(lines, fmt.Sprintf("Camera detections: %.0f pts (%.0f%% weight)", c.CameraDetections, WeightCameraDetections*100))
	}
	lines = append(lines, fmt.Sprintf("Time since cleanup: %.0f pts (%.0f%% weight)", c.TimeSinceCleanup, WeightTimeSinceCleanup*100))
	if c.EstimatedVolume > 0 {
		lines = append(lines, fmt.Sprintf("Estimated volume: %.0f pts (%.0f%% weight)", c.EstimatedVolume, WeightEstimatedVolume*100))
	}
	return lines
}
