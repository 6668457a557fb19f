// Package store is the mutation layer: it owns the canonical occurrence,
// detection, camera, route and alert collections, applies all writes
// through a single lock, and re-runs hotspot aggregation after every
// occurrence/detection mutation so readers always observe a consistent
// derived view.
package store

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/scslimpo/hotspots-backend-go/internal/engine"
	"github.com/scslimpo/hotspots-backend-go/internal/metrics"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

// Store holds all transient application state. Construct one per process
// (or per test); there are no package-level collections.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	rnd *rand.Rand

	occurrences  []models.Occurrence
	detections   []models.Detection
	cameras      []models.Camera
	hotspots     []models.Hotspot
	routes       []models.Route
	alerts       []models.CollectionAlert
	cooperatives []models.Cooperative

	// Per-cell operational status survives recomputes; aggregation merges
	// it into each freshly derived hotspot.
	cellStatus map[string]models.CellStatus
}

// New creates an empty store
func New() *Store {
	return &Store{
		now:        time.Now,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		cellStatus: make(map[string]models.CellStatus),
	}
}

// SetClock overrides the time source, for deterministic tests
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SeedCameras replaces the camera collection
func (s *Store) SeedCameras(cameras []models.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras = append([]models.Camera(nil), cameras...)
}

// SeedCooperatives replaces the cooperative collection
func (s *Store) SeedCooperatives(coops []models.Cooperative) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooperatives = append([]models.Cooperative(nil), coops...)
}

// RecomputeHotspots forces an aggregation pass outside any mutation, e.g.
// from the periodic refresh that keeps the time-since-cleanup component
// decaying with wall-clock time.
func (s *Store) RecomputeHotspots() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
}

// recomputeLocked replaces the hotspot set wholesale and propagates each
// hotspot's score onto its member occurrences. Callers must hold mu.
func (s *Store) recomputeLocked() {
	start := time.Now()
	s.hotspots = engine.Recompute(s.occurrences, s.detections, s.cellStatus, s.now())

	scoreByID := make(map[string]int)
	for _, h := range s.hotspots {
		for _, id := range h.OccurrenceIDs {
			scoreByID[id] = h.Score
		}
	}
	for i := range s.occurrences {
		s.occurrences[i].Score = scoreByID[s.occurrences[i].ID]
	}

	metrics.RecomputesTotal.Inc()
	metrics.RecomputeDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	metrics.HotspotsCurrent.Set(float64(len(s.hotspots)))
	log.Printf("[store] recomputed hotspots: %d cells emitted", len(s.hotspots))
}

// Hotspots returns a snapshot of the current ranked hotspot set
func (s *Store) Hotspots() []models.Hotspot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Hotspot(nil), s.hotspots...)
}

// Occurrences returns a snapshot of all occurrences
func (s *Store) Occurrences() []models.Occurrence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Occurrence(nil), s.occurrences...)
}

// Detections returns a snapshot of all detections
func (s *Store) Detections() []models.Detection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Detection(nil), s.detections...)
}

// Cameras returns a snapshot of all cameras
func (s *Store) Cameras() []models.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Camera(nil), s.cameras...)
}

// Routes returns a snapshot of all routes
func (s *Store) Routes() []models.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Route(nil), s.routes...)
}

// Alerts returns a snapshot of all collection alerts
func (s *Store) Alerts() []models.CollectionAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CollectionAlert(nil), s.alerts...)
}

// Cooperatives returns a snapshot of the cooperative list
func (s *Store) Cooperatives() []models.Cooperative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Cooperative(nil), s.cooperatives...)
}
