package models

// DashboardMetrics is the read-side aggregation over current collections
type DashboardMetrics struct {
	TotalOccurrences    int     `json:"total_occurrences"`
	OpenOccurrences     int     `json:"open_occurrences"`
	ResolvedOccurrences int     `json:"resolved_occurrences"`
	ActiveHotspots      int     `json:"active_hotspots"`
	RoutesToday         int     `json:"routes_today"`
	CollectedWeightKg   int     `json:"collected_weight_kg"`
	RecoveredMaterials  int     `json:"recovered_materials"`
	NewAlerts           int     `json:"new_alerts"`
	AvgResolutionHours  float64 `json:"avg_resolution_hours"`
}
