package store

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/scslimpo/hotspots-backend-go/internal/metrics"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

// DemoResult summarizes what a demo run generated
type DemoResult struct {
	Detections  int `json:"detections"`
	Occurrences int `json:"occurrences"`
}

// RunDemo generates waste activity around every registered camera: 3-5
// detections and 2-3 citizen occurrences per camera, followed by a single
// aggregation pass over the whole batch.
func (s *Store) RunDemo() (DemoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cameras) == 0 {
		return DemoResult{}, fmt.Errorf("%w: no cameras registered", ErrInvalidInput)
	}

	classes := []models.WasteType{
		models.WasteDryRecyclable,
		models.WasteOrganic,
		models.WasteConstructionDebris,
		models.WasteBulky,
		models.WasteMixed,
	}
	volumes := []models.VolumeBand{models.VolumeSmall, models.VolumeMedium, models.VolumeLarge}

	var result DemoResult
	now := s.now()
	for _, cam := range s.cameras {
		numDetections := 3 + s.rnd.Intn(3)
		for i := 0; i < numDetections; i++ {
			s.detections = append(s.detections, models.Detection{
				ID:         uuid.NewString(),
				CreatedAt:  now,
				Latitude:   cam.Latitude + (s.rnd.Float64()-0.5)*0.0008,
				Longitude:  cam.Longitude + (s.rnd.Float64()-0.5)*0.0008,
				WasteClass: classes[s.rnd.Intn(len(classes))],
				Confidence: 0.75 + s.rnd.Float64()*0.23,
				SourceID:   cam.ID,
			})
			metrics.DetectionsCreatedTotal.Inc()
			result.Detections++
		}

		numOccurrences := 2 + s.rnd.Intn(2)
		for i := 0; i < numOccurrences; i++ {
			s.occurrences = append(s.occurrences, models.Occurrence{
				ID:            uuid.NewString(),
				CreatedAt:     now,
				CreatedByRole: models.RoleCitizen,
				Latitude:      cam.Latitude + (s.rnd.Float64()-0.5)*0.0006,
				Longitude:     cam.Longitude + (s.rnd.Float64()-0.5)*0.0006,
				WasteType:     classes[s.rnd.Intn(len(classes))],
				VolumeBand:    volumes[s.rnd.Intn(len(volumes))],
				Description:   fmt.Sprintf("Waste sighted near %s", cam.Name),
				Status:        models.OccurrenceOpen,
				UpdatedAt:     now,
			})
			metrics.OccurrencesCreatedTotal.Inc()
			result.Occurrences++
		}
	}

	s.recomputeLocked()
	log.Printf("[store] demo run: %d detections, %d occurrences across %d cameras",
		result.Detections, result.Occurrences, len(s.cameras))
	return result, nil
}
