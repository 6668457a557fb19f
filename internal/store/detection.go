package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/scslimpo/hotspots-backend-go/internal/metrics"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/spatial"
)

// InjectDetection validates and appends a camera detection. Detections
// are append-only; there is no edit or delete path.
func (s *Store) InjectDetection(req models.InjectDetectionRequest) (models.Detection, error) {
	if !spatial.ValidCoordinates(req.Latitude, req.Longitude) {
		return models.Detection{}, fmt.Errorf("%w: coordinates %f,%f out of range", ErrInvalidInput, req.Latitude, req.Longitude)
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return models.Detection{}, fmt.Errorf("%w: confidence %f outside [0,1]", ErrInvalidInput, req.Confidence)
	}
	if !models.ValidWasteType(req.WasteClass) {
		return models.Detection{}, fmt.Errorf("%w: unknown waste class %q", ErrInvalidInput, req.WasteClass)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	det := models.Detection{
		ID:         uuid.NewString(),
		CreatedAt:  s.now(),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		WasteClass: req.WasteClass,
		Confidence: req.Confidence,
		SourceID:   req.SourceID,
	}
	s.detections = append(s.detections, det)
	metrics.DetectionsCreatedTotal.Inc()
	s.recomputeLocked()
	return det, nil
}

// InjectBulkDetections appends count simulated detections with random
// jitter around the registered cameras, recomputing once after the whole
// batch rather than per detection.
func (s *Store) InjectBulkDetections(count int) ([]models.Detection, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cameras) == 0 {
		return nil, fmt.Errorf("%w: no cameras registered to simulate from", ErrInvalidInput)
	}

	classes := []models.WasteType{
		models.WasteOrganic,
		models.WasteDryRecyclable,
		models.WasteConstructionDebris,
		models.WasteBulky,
		models.WasteMixed,
	}

	created := make([]models.Detection, 0, count)
	now := s.now()
	for i := 0; i < count; i++ {
		cam := s.cameras[s.rnd.Intn(len(s.cameras))]
		det := models.Detection{
			ID:         uuid.NewString(),
			CreatedAt:  now,
			Latitude:   cam.Latitude + (s.rnd.Float64()-0.5)*0.001,
			Longitude:  cam.Longitude + (s.rnd.Float64()-0.5)*0.001,
			WasteClass: classes[s.rnd.Intn(len(classes))],
			Confidence: 0.7 + s.rnd.Float64()*0.25,
			SourceID:   cam.ID,
		}
		s.detections = append(s.detections, det)
		created = append(created, det)
		metrics.DetectionsCreatedTotal.Inc()
	}

	s.recomputeLocked()
	return created, nil
}
