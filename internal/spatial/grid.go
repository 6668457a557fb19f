package spatial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grid resolution: 3 decimal places, roughly 100m cells at the equator.
const gridScale = 1000.0

// GridKey buckets a coordinate pair into its fixed grid cell.
// Two coordinates share a key iff their floored 3-decimal values match;
// points just either side of a cell boundary land in different cells even
// when physically close. That is an accepted approximation of the grid.
func GridKey(lat, lng float64) string {
	latGrid := int(math.Floor(lat * gridScale))
	lngGrid := int(math.Floor(lng * gridScale))
	return fmt.Sprintf("%d_%d", latGrid, lngGrid)
}

// KeyToCenter returns the centroid of a grid cell
func KeyToCenter(key string) (lat, lng float64, err error) {
	parts := strings.Split(key, "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid key: %q", key)
	}
	latGrid, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid key %q: %w", key, err)
	}
	lngGrid, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid key %q: %w", key, err)
	}
	return (float64(latGrid) + 0.5) / gridScale, (float64(lngGrid) + 0.5) / gridScale, nil
}

// ValidCoordinates reports whether lat/lng are in range
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
