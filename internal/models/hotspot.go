package models

import "time"

// ScoreComponents holds the four weighted sub-scores, each 0-100
type ScoreComponents struct {
	Recurrence       float64 `json:"recurrence"`
	CameraDetections float64 `json:"camera_detections"`
	TimeSinceCleanup float64 `json:"time_since_cleanup"`
	EstimatedVolume  float64 `json:"estimated_volume"`
}

// ScoreCategory is the priority band derived from the final score
type ScoreCategory string

const (
	CategoryLow      ScoreCategory = "low"
	CategoryMedium   ScoreCategory = "medium"
	CategoryHigh     ScoreCategory = "high"
	CategoryCritical ScoreCategory = "critical"
)

// CellStatus is the operational state of a hotspot's grid cell
type CellStatus string

const (
	CellActive    CellStatus = "active"
	CellInService CellStatus = "in_service"
	CellCleaned   CellStatus = "cleaned"
)

// Hotspot is a derived spatial cluster of occurrences and detections.
// Hotspots are recomputed wholesale on every aggregation pass; the ID is
// regenerated each pass, so callers needing continuity must key on GridKey.
type Hotspot struct {
	ID              string          `json:"id"`
	GridKey         string          `json:"grid_key"`
	CenterLat       float64         `json:"center_lat"`
	CenterLng       float64         `json:"center_lng"`
	Score           int             `json:"score"` // 0-100
	Category        ScoreCategory   `json:"category"`
	Components      ScoreComponents `json:"components"`
	Status          CellStatus      `json:"status"`
	OccurrenceIDs   []string        `json:"occurrence_ids"`
	DetectionIDs    []string        `json:"detection_ids"`
	LastCleanup     *time.Time      `json:"last_cleanup,omitempty"`
}
