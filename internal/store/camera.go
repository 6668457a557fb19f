package store

import (
	"fmt"

	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/spatial"
)

// AddCamera registers a new camera at the given position. Heading is
// randomized; detections simulated later jitter around this point.
func (s *Store) AddCamera(lat, lng float64, name string) (models.Camera, error) {
	if !spatial.ValidCoordinates(lat, lng) {
		return models.Camera{}, fmt.Errorf("%w: coordinates %f,%f out of range", ErrInvalidInput, lat, lng)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := len(s.cameras) + 1
	if name == "" {
		name = fmt.Sprintf("CAM-%d", seq)
	}
	cam := models.Camera{
		ID:          fmt.Sprintf("CAM-%03d", seq),
		Name:        name,
		Latitude:    lat,
		Longitude:   lng,
		HeadingDeg:  float64(s.rnd.Intn(360)),
		FieldOfView: 90,
		Active:      true,
	}
	s.cameras = append(s.cameras, cam)
	return cam, nil
}

// RemoveCamera deletes a camera. Detections it produced are kept; they
// are append-only records of past sightings.
func (s *Store) RemoveCamera(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cameras {
		if s.cameras[i].ID == id {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("camera %s: %w", id, ErrNotFound)
}
