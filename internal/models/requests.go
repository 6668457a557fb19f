package models

// RegisterOccurrenceRequest is the payload for creating an occurrence
type RegisterOccurrenceRequest struct {
	CreatedByRole ReporterRole `json:"created_by_role" binding:"required"`
	Latitude      float64      `json:"latitude" binding:"required"`
	Longitude     float64      `json:"longitude" binding:"required"`
	WasteType     WasteType    `json:"waste_type" binding:"required"`
	VolumeBand    VolumeBand   `json:"volume_band" binding:"required"`
	Description   string       `json:"description"`
}

// EditOccurrenceRequest is a partial update; nil fields are left untouched
type EditOccurrenceRequest struct {
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
	WasteType   *WasteType  `json:"waste_type"`
	VolumeBand  *VolumeBand `json:"volume_band"`
	Description *string     `json:"description"`
}

// UpdateStatusRequest carries a plain status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FinalizeOccurrenceRequest closes an occurrence with a weight estimate
type FinalizeOccurrenceRequest struct {
	WeightKgMin float64 `json:"weight_kg_min"`
	WeightKgMax float64 `json:"weight_kg_max"`
}

// InjectDetectionRequest is the payload for a single camera detection
type InjectDetectionRequest struct {
	Latitude   float64   `json:"latitude" binding:"required"`
	Longitude  float64   `json:"longitude" binding:"required"`
	WasteClass WasteType `json:"waste_class" binding:"required"`
	Confidence float64   `json:"confidence"`
	SourceID   string    `json:"source_id" binding:"required"`
}

// BulkDetectionsRequest asks for count simulated detections around cameras
type BulkDetectionsRequest struct {
	Count int `json:"count" binding:"required"`
}

// CreateRouteRequest carries the caller-ordered hotspot selection
type CreateRouteRequest struct {
	HotspotIDs []string `json:"hotspotIds" binding:"required"`
}

// UpdateAlertStatusRequest transitions an alert, optionally assigning a cooperative
type UpdateAlertStatusRequest struct {
	Status        AlertStatus `json:"status" binding:"required"`
	CooperativeID string      `json:"cooperative_id"`
}

// AddCameraRequest registers a new camera
type AddCameraRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// HotspotFilter limits the hotspot listing
type HotspotFilter struct {
	Category string  `form:"category"` // low, medium, high, critical
	MinScore int     `form:"minScore"`
	MinLat   float64 `form:"minLat"`
	MaxLat   float64 `form:"maxLat"`
	MinLng   float64 `form:"minLng"`
	MaxLng   float64 `form:"maxLng"`
}

// OccurrenceFilter limits the occurrence listing
type OccurrenceFilter struct {
	Status    string `form:"status"`
	WasteType string `form:"wasteType"`
}
