package models

import "time"

// RouteStatus is the lifecycle status of a cleanup route
type RouteStatus string

const (
	RoutePlanned    RouteStatus = "planned"
	RouteInProgress RouteStatus = "in_progress"
	RouteCompleted  RouteStatus = "completed"
	RouteCanceled   RouteStatus = "canceled"
)

// ValidRouteStatus reports whether s is a known route status
func ValidRouteStatus(s RouteStatus) bool {
	switch s {
	case RoutePlanned, RouteInProgress, RouteCompleted, RouteCanceled:
		return true
	}
	return false
}

// RouteStop is one visit in a route. ETAMinutes is measured from the route
// start over the cumulative walking distance, not from the previous stop.
type RouteStop struct {
	HotspotID  string `json:"hotspot_id"`
	GridKey    string `json:"grid_key"`
	Order      int    `json:"order"` // 1-based
	ETAMinutes int    `json:"eta_minutes"`
}

// Route is a planned sequence of hotspot visits
type Route struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	CreatedBy   string      `json:"created_by"`
	Stops       []RouteStop `json:"stops"`
	Status      RouteStatus `json:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}
