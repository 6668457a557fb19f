package models

import "time"

// WasteType classifies the reported material
type WasteType string

const (
	WasteOrganic            WasteType = "organic"
	WasteDryRecyclable      WasteType = "dry_recyclable"
	WasteConstructionDebris WasteType = "construction_debris"
	WasteBulky              WasteType = "bulky"
	WasteMixed              WasteType = "mixed"
)

// ValidWasteType reports whether t is a known waste type
func ValidWasteType(t WasteType) bool {
	switch t {
	case WasteOrganic, WasteDryRecyclable, WasteConstructionDebris, WasteBulky, WasteMixed:
		return true
	}
	return false
}

// Recyclable reports whether the waste type is routed to recovery cooperatives
func (t WasteType) Recyclable() bool {
	return t == WasteDryRecyclable || t == WasteOrganic
}

// VolumeBand is the reporter's rough volume estimate
type VolumeBand string

const (
	VolumeSmall  VolumeBand = "small"  // 1-3 bags
	VolumeMedium VolumeBand = "medium" // 4-10 bags
	VolumeLarge  VolumeBand = "large"  // 10+ bags
)

// VolumeMultiplier maps a volume band to its score multiplier
var VolumeMultiplier = map[VolumeBand]float64{
	VolumeSmall:  1,
	VolumeMedium: 2.5,
	VolumeLarge:  5,
}

// ValidVolumeBand reports whether b is a known volume band
func ValidVolumeBand(b VolumeBand) bool {
	_, ok := VolumeMultiplier[b]
	return ok
}

// OccurrenceStatus is the lifecycle status of a reported occurrence
type OccurrenceStatus string

const (
	OccurrenceOpen        OccurrenceStatus = "open"
	OccurrencePrioritized OccurrenceStatus = "prioritized"
	OccurrenceInService   OccurrenceStatus = "in_service"
	OccurrenceResolved    OccurrenceStatus = "resolved"
)

// ValidOccurrenceStatus reports whether s is a known occurrence status
func ValidOccurrenceStatus(s OccurrenceStatus) bool {
	switch s {
	case OccurrenceOpen, OccurrencePrioritized, OccurrenceInService, OccurrenceResolved:
		return true
	}
	return false
}

// ReporterRole identifies who filed the report
type ReporterRole string

const (
	RoleCitizen     ReporterRole = "citizen"
	RoleOperator    ReporterRole = "operator"
	RoleCooperative ReporterRole = "cooperative"
	RoleSponsor     ReporterRole = "sponsor"
)

// Occurrence is a manually or automatically reported waste event.
// ResolvedAt and the weight bounds are set iff Status is resolved.
type Occurrence struct {
	ID            string           `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	CreatedByRole ReporterRole     `json:"created_by_role"`
	Latitude      float64          `json:"latitude"`
	Longitude     float64          `json:"longitude"`
	WasteType     WasteType        `json:"waste_type"`
	VolumeBand    VolumeBand       `json:"volume_band"`
	Description   string           `json:"description,omitempty"`
	Status        OccurrenceStatus `json:"status"`
	Score         int              `json:"score"` // refreshed by aggregation, 0 until then
	UpdatedAt     time.Time        `json:"updated_at"`
	ResolvedAt    *time.Time       `json:"resolved_at,omitempty"`
	WeightKgMin   *float64         `json:"weight_kg_min,omitempty"`
	WeightKgMax   *float64         `json:"weight_kg_max,omitempty"`
}

// Open reports whether the occurrence still counts toward recurrence
func (o *Occurrence) Open() bool {
	return o.Status != OccurrenceResolved
}
