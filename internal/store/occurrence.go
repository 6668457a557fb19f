package store

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/scslimpo/hotspots-backend-go/internal/metrics"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
	"github.com/scslimpo/hotspots-backend-go/internal/spatial"
)

// RegisterOccurrence validates and appends a new occurrence, then
// recomputes the hotspot set
func (s *Store) RegisterOccurrence(req models.RegisterOccurrenceRequest) (models.Occurrence, error) {
	if !spatial.ValidCoordinates(req.Latitude, req.Longitude) {
		return models.Occurrence{}, fmt.Errorf("%w: coordinates %f,%f out of range", ErrInvalidInput, req.Latitude, req.Longitude)
	}
	if !models.ValidWasteType(req.WasteType) {
		return models.Occurrence{}, fmt.Errorf("%w: unknown waste type %q", ErrInvalidInput, req.WasteType)
	}
	if !models.ValidVolumeBand(req.VolumeBand) {
		return models.Occurrence{}, fmt.Errorf("%w: unknown volume band %q", ErrInvalidInput, req.VolumeBand)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	occ := models.Occurrence{
		ID:            uuid.NewString(),
		CreatedAt:     now,
		CreatedByRole: req.CreatedByRole,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		WasteType:     req.WasteType,
		VolumeBand:    req.VolumeBand,
		Description:   req.Description,
		Status:        models.OccurrenceOpen,
		Score:         0,
		UpdatedAt:     now,
	}
	s.occurrences = append(s.occurrences, occ)
	metrics.OccurrencesCreatedTotal.Inc()
	s.recomputeLocked()

	// Return the post-aggregation view so the caller sees the fresh score
	updated, _ := s.findOccurrenceLocked(occ.ID)
	return *updated, nil
}

// EditOccurrence merges non-nil fields of the patch into the occurrence
// and bumps its update timestamp
func (s *Store) EditOccurrence(id string, patch models.EditOccurrenceRequest) (models.Occurrence, error) {
	if patch.WasteType != nil && !models.ValidWasteType(*patch.WasteType) {
		return models.Occurrence{}, fmt.Errorf("%w: unknown waste type %q", ErrInvalidInput, *patch.WasteType)
	}
	if patch.VolumeBand != nil && !models.ValidVolumeBand(*patch.VolumeBand) {
		return models.Occurrence{}, fmt.Errorf("%w: unknown volume band %q", ErrInvalidInput, *patch.VolumeBand)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	occ, err := s.findOccurrenceLocked(id)
	if err != nil {
		return models.Occurrence{}, err
	}

	lat, lng := occ.Latitude, occ.Longitude
	if patch.Latitude != nil {
		lat = *patch.Latitude
	}
	if patch.Longitude != nil {
		lng = *patch.Longitude
	}
	if !spatial.ValidCoordinates(lat, lng) {
		return models.Occurrence{}, fmt.Errorf("%w: coordinates %f,%f out of range", ErrInvalidInput, lat, lng)
	}
	occ.Latitude, occ.Longitude = lat, lng
	if patch.WasteType != nil {
		occ.WasteType = *patch.WasteType
	}
	if patch.VolumeBand != nil {
		occ.VolumeBand = *patch.VolumeBand
	}
	if patch.Description != nil {
		occ.Description = *patch.Description
	}
	occ.UpdatedAt = s.now()

	s.recomputeLocked()
	return *occ, nil
}

// DeleteOccurrence removes the occurrence outright. Hard removal: the
// entity is gone from every subsequent aggregation pass, though metrics
// over already-resolved occurrences it contributed to are not rewritten.
func (s *Store) DeleteOccurrence(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.occurrences {
		if s.occurrences[i].ID == id {
			s.occurrences = append(s.occurrences[:i], s.occurrences[i+1:]...)
			s.recomputeLocked()
			return nil
		}
	}
	return fmt.Errorf("occurrence %s: %w", id, ErrNotFound)
}

// UpdateOccurrenceStatus sets the lifecycle status without touching
// resolution fields; FinalizeOccurrence is the path that resolves.
func (s *Store) UpdateOccurrenceStatus(id string, status models.OccurrenceStatus) (models.Occurrence, error) {
	if !models.ValidOccurrenceStatus(status) {
		return models.Occurrence{}, fmt.Errorf("%w: unknown occurrence status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	occ, err := s.findOccurrenceLocked(id)
	if err != nil {
		return models.Occurrence{}, err
	}
	occ.Status = status
	occ.UpdatedAt = s.now()

	s.recomputeLocked()
	return *occ, nil
}

// FinalizeOccurrence resolves the occurrence with a weight estimate. When
// the material is recyclable-class and the occurrence's cell currently
// owns a hotspot, a collection alert with a 4-hour window is emitted for
// the cooperatives. Hotspot membership is resolved by cell lookup at call
// time, never from a stored reference.
func (s *Store) FinalizeOccurrence(id string, weightMin, weightMax float64) (models.Occurrence, error) {
	if weightMin < 0 || weightMax < weightMin {
		return models.Occurrence{}, fmt.Errorf("%w: weight bounds %f..%f", ErrInvalidInput, weightMin, weightMax)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	occ, err := s.findOccurrenceLocked(id)
	if err != nil {
		return models.Occurrence{}, err
	}

	now := s.now()
	occ.Status = models.OccurrenceResolved
	occ.ResolvedAt = &now
	occ.WeightKgMin = &weightMin
	occ.WeightKgMax = &weightMax
	occ.UpdatedAt = now

	if occ.WasteType.Recyclable() {
		if hotspot := s.hotspotForCellLocked(spatial.GridKey(occ.Latitude, occ.Longitude)); hotspot != nil {
			alert := models.CollectionAlert{
				ID:                uuid.NewString(),
				CreatedAt:         now,
				HotspotID:         hotspot.ID,
				SuggestedMaterial: []models.WasteType{occ.WasteType},
				WindowStart:       now,
				WindowEnd:         now.Add(4 * time.Hour),
				Status:            models.AlertNew,
				EstimatedWeightKg: (weightMin + weightMax) / 2,
			}
			s.alerts = append(s.alerts, alert)
			metrics.AlertsCreatedTotal.Inc()
			log.Printf("[store] collection alert %s emitted for hotspot %s", alert.ID, hotspot.ID)
		}
	}

	s.recomputeLocked()
	return *occ, nil
}

// findOccurrenceLocked returns a pointer into the collection. Callers
// must hold mu.
func (s *Store) findOccurrenceLocked(id string) (*models.Occurrence, error) {
	for i := range s.occurrences {
		if s.occurrences[i].ID == id {
			return &s.occurrences[i], nil
		}
	}
	return nil, fmt.Errorf("occurrence %s: %w", id, ErrNotFound)
}

// hotspotForCellLocked finds the current hotspot owning a grid cell, if
// any. Callers must hold mu.
func (s *Store) hotspotForCellLocked(gridKey string) *models.Hotspot {
	for i := range s.hotspots {
		if s.hotspots[i].GridKey == gridKey {
			return &s.hotspots[i]
		}
	}
	return nil
}
