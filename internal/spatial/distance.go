package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusKm is Earth's mean radius in kilometers
	EarthRadiusKm = 6371.0

	// WalkingSpeedKmh is the assumed crew walking speed for ETA estimates
	WalkingSpeedKmh = 4.0
)

// HaversineKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// ETAMinutes estimates walking time in whole minutes for a distance.
// Zero distance yields zero minutes.
func ETAMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / WalkingSpeedKmh * 60))
}
