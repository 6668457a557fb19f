package models

import "time"

// AlertStatus is the lifecycle status of a collection alert
type AlertStatus string

const (
	AlertNew       AlertStatus = "new"
	AlertAccepted  AlertStatus = "accepted"
	AlertDeclined  AlertStatus = "declined"
	AlertCompleted AlertStatus = "completed"
)

// ValidAlertStatus reports whether s is a known alert status
func ValidAlertStatus(s AlertStatus) bool {
	switch s {
	case AlertNew, AlertAccepted, AlertDeclined, AlertCompleted:
		return true
	}
	return false
}

// CollectionAlert notifies a recovery cooperative that recyclable material
// is available at a hotspot. Emitted when a recyclable-class occurrence is
// finalized; the collection window is 4 hours from resolution.
type CollectionAlert struct {
	ID                string      `json:"id"`
	CreatedAt         time.Time   `json:"created_at"`
	HotspotID         string      `json:"hotspot_id"`
	SuggestedMaterial []WasteType `json:"suggested_material"`
	WindowStart       time.Time   `json:"window_start"`
	WindowEnd         time.Time   `json:"window_end"`
	Status            AlertStatus `json:"status"`
	CooperativeID     string      `json:"cooperative_id,omitempty"`
	EstimatedWeightKg float64     `json:"estimated_weight_kg,omitempty"`
}

// Cooperative is a materials-recovery partner
type Cooperative struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	ServedAreas       []string    `json:"served_areas"`
	Contact           string      `json:"contact"`
	Email             string      `json:"email,omitempty"`
	AcceptedMaterials []WasteType `json:"accepted_materials"`
}
