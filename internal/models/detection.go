package models

import "time"

// Detection is an automated camera sighting of waste.
// Detections are append-only: never edited, resolved or deleted in-flow.
type Detection struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	WasteClass WasteType `json:"waste_class"`
	Confidence float64   `json:"confidence"` // 0-1, validated at the mutation boundary
	SourceID   string    `json:"source_id"`  // camera that produced the sighting
}

// Camera is a registered street camera used as a detection source
type Camera struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	HeadingDeg  float64 `json:"heading_deg"`   // 0-360, 0 is North
	FieldOfView float64 `json:"field_of_view"` // degrees
	VideoURL    string  `json:"video_url,omitempty"`
	Active      bool    `json:"active"`
}
