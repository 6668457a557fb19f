package store

import (
	"errors"
	"testing"
	"time"

	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	s := New()
	s.SetClock(func() time.Time { return testNow })
	return s
}

func register(t *testing.T, s *Store, lat, lng float64, wt models.WasteType, vb models.VolumeBand) models.Occurrence {
	t.Helper()
	occ, err := s.RegisterOccurrence(models.RegisterOccurrenceRequest{
		CreatedByRole: models.RoleCitizen,
		Latitude:      lat,
		Longitude:     lng,
		WasteType:     wt,
		VolumeBand:    vb,
	})
	if err != nil {
		t.Fatalf("RegisterOccurrence: %v", err)
	}
	return occ
}

func TestRegisterOccurrenceRecomputes(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, -15.7967, -47.8871, models.WasteMixed, models.VolumeLarge)

	if occ.Status != models.OccurrenceOpen {
		t.Errorf("new occurrence status = %s, want open", occ.Status)
	}
	hotspots := s.Hotspots()
	if len(hotspots) != 1 {
		t.Fatalf("expected 1 hotspot after registration, got %d", len(hotspots))
	}
	// 1 open small-capped: rec=10*0.30 + vol=50*0.25 + time=50*0.20 = 3+12.5+10 = 25.5 -> 26
	if hotspots[0].Score != 26 {
		t.Errorf("hotspot score = %d, want 26", hotspots[0].Score)
	}
	// Aggregation propagates the cell score onto the occurrence
	if occ.Score != 26 {
		t.Errorf("occurrence score = %d, want 26", occ.Score)
	}
}

func TestRegisterOccurrenceValidation(t *testing.T) {
	s := newTestStore()
	cases := []models.RegisterOccurrenceRequest{
		{Latitude: 95, Longitude: 0, WasteType: models.WasteMixed, VolumeBand: models.VolumeSmall},
		{Latitude: 0, Longitude: -181, WasteType: models.WasteMixed, VolumeBand: models.VolumeSmall},
		{Latitude: 10, Longitude: 10, WasteType: "plastic", VolumeBand: models.VolumeSmall},
		{Latitude: 10, Longitude: 10, WasteType: models.WasteMixed, VolumeBand: "huge"},
	}
	for i, req := range cases {
		if _, err := s.RegisterOccurrence(req); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if len(s.Occurrences()) != 0 {
		t.Fatal("invalid registrations must not be stored")
	}
}

func TestEditOccurrence(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteMixed, models.VolumeSmall)

	desc := "pile of debris"
	band := models.VolumeLarge
	updated, err := s.EditOccurrence(occ.ID, models.EditOccurrenceRequest{
		Description: &desc,
		VolumeBand:  &band,
	})
	if err != nil {
		t.Fatalf("EditOccurrence: %v", err)
	}
	if updated.Description != desc || updated.VolumeBand != band {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.WasteType != models.WasteMixed {
		t.Errorf("untouched field changed: %s", updated.WasteType)
	}

	if _, err := s.EditOccurrence("missing", models.EditOccurrenceRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing ID, got %v", err)
	}
}

func TestDeleteOccurrence(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteMixed, models.VolumeLarge)

	if err := s.DeleteOccurrence(occ.ID); err != nil {
		t.Fatalf("DeleteOccurrence: %v", err)
	}
	if len(s.Occurrences()) != 0 {
		t.Fatal("occurrence not removed")
	}
	for _, h := range s.Hotspots() {
		for _, id := range h.OccurrenceIDs {
			if id == occ.ID {
				t.Fatal("deleted occurrence still contributing to a hotspot")
			}
		}
	}
	if err := s.DeleteOccurrence(occ.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUpdateOccurrenceStatus(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteMixed, models.VolumeSmall)

	updated, err := s.UpdateOccurrenceStatus(occ.ID, models.OccurrencePrioritized)
	if err != nil {
		t.Fatalf("UpdateOccurrenceStatus: %v", err)
	}
	if updated.Status != models.OccurrencePrioritized {
		t.Errorf("status = %s, want prioritized", updated.Status)
	}
	if updated.ResolvedAt != nil {
		t.Error("plain status update must not set resolution fields")
	}
	if _, err := s.UpdateOccurrenceStatus(occ.ID, "unknown"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFinalizeEmitsCollectionAlert(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteDryRecyclable, models.VolumeLarge)

	resolved, err := s.FinalizeOccurrence(occ.ID, 10, 30)
	if err != nil {
		t.Fatalf("FinalizeOccurrence: %v", err)
	}
	if resolved.Status != models.OccurrenceResolved || resolved.ResolvedAt == nil {
		t.Fatalf("occurrence not resolved: %+v", resolved)
	}
	if *resolved.WeightKgMin != 10 || *resolved.WeightKgMax != 30 {
		t.Errorf("weight bounds not stored")
	}

	alerts := s.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Status != models.AlertNew {
		t.Errorf("alert status = %s, want new", a.Status)
	}
	if got := a.WindowEnd.Sub(a.WindowStart); got != 4*time.Hour {
		t.Errorf("collection window = %v, want 4h", got)
	}
	if a.EstimatedWeightKg != 20 {
		t.Errorf("estimated weight = %f, want midpoint 20", a.EstimatedWeightKg)
	}
	if len(a.SuggestedMaterial) != 1 || a.SuggestedMaterial[0] != models.WasteDryRecyclable {
		t.Errorf("suggested material = %v", a.SuggestedMaterial)
	}
}

func TestFinalizeNonRecyclableNoAlert(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteConstructionDebris, models.VolumeLarge)
	if _, err := s.FinalizeOccurrence(occ.ID, 5, 10); err != nil {
		t.Fatalf("FinalizeOccurrence: %v", err)
	}
	if len(s.Alerts()) != 0 {
		t.Fatal("non-recyclable finalization must not emit an alert")
	}
}

func TestFinalizeValidatesBounds(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteOrganic, models.VolumeSmall)
	if _, err := s.FinalizeOccurrence(occ.ID, 30, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("min > max must fail, got %v", err)
	}
	if _, err := s.FinalizeOccurrence(occ.ID, -1, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative min must fail, got %v", err)
	}
	if _, err := s.FinalizeOccurrence("missing", 1, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ID must fail with not-found, got %v", err)
	}
}

func TestInjectDetectionValidation(t *testing.T) {
	s := newTestStore()
	base := models.InjectDetectionRequest{
		Latitude: 10.0001, Longitude: 20.0001,
		WasteClass: models.WasteMixed, SourceID: "CAM-001",
	}

	req := base
	req.Confidence = 1.2
	if _, err := s.InjectDetection(req); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("confidence > 1 must fail, got %v", err)
	}
	req.Confidence = -0.1
	if _, err := s.InjectDetection(req); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative confidence must fail, got %v", err)
	}

	req = base
	req.Confidence = 1.0
	det, err := s.InjectDetection(req)
	if err != nil {
		t.Fatalf("InjectDetection: %v", err)
	}
	if det.ID == "" || det.CreatedAt.IsZero() {
		t.Errorf("detection missing identity fields: %+v", det)
	}
	// A lone full-confidence detection in a never-cleaned cell scores
	// round(20*0.25 + 50*0.20) = 15 and emits a hotspot
	hotspots := s.Hotspots()
	if len(hotspots) != 1 || hotspots[0].Score != 15 {
		t.Fatalf("expected one hotspot at score 15, got %+v", hotspots)
	}
}

func TestInjectBulkDetections(t *testing.T) {
	s := newTestStore()
	if _, err := s.InjectBulkDetections(5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bulk injection without cameras must fail, got %v", err)
	}

	if _, err := s.AddCamera(-15.7967737, -47.8870557, "CAM-01"); err != nil {
		t.Fatalf("AddCamera: %v", err)
	}
	created, err := s.InjectBulkDetections(20)
	if err != nil {
		t.Fatalf("InjectBulkDetections: %v", err)
	}
	if len(created) != 20 || len(s.Detections()) != 20 {
		t.Fatalf("expected 20 detections, got %d", len(s.Detections()))
	}
	for _, d := range created {
		if d.Confidence < 0.7 || d.Confidence > 0.95 {
			t.Errorf("simulated confidence %f outside [0.7,0.95]", d.Confidence)
		}
		if d.SourceID != "CAM-001" {
			t.Errorf("unexpected source: %s", d.SourceID)
		}
	}
}

func TestCreateRouteMarksCellsInService(t *testing.T) {
	s := newTestStore()
	register(t, s, 10.0001, 20.0001, models.WasteMixed, models.VolumeLarge)
	register(t, s, 30.0001, 40.0001, models.WasteMixed, models.VolumeLarge)

	hotspots := s.Hotspots()
	if len(hotspots) != 2 {
		t.Fatalf("setup: expected 2 hotspots, got %d", len(hotspots))
	}

	route, err := s.CreateRoute([]string{hotspots[0].ID, hotspots[1].ID}, "op-1")
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}
	if route.Status != models.RoutePlanned || len(route.Stops) != 2 {
		t.Fatalf("unexpected route: %+v", route)
	}

	for _, h := range s.Hotspots() {
		if h.Status != models.CellInService {
			t.Errorf("hotspot %s status = %s, want in_service", h.GridKey, h.Status)
		}
	}

	// The overlay survives a full recompute, even though IDs change
	s.RecomputeHotspots()
	for _, h := range s.Hotspots() {
		if h.Status != models.CellInService {
			t.Errorf("in_service status lost across recompute for %s", h.GridKey)
		}
	}
}

func TestRouteStatusMachine(t *testing.T) {
	s := newTestStore()
	register(t, s, 10.0001, 20.0001, models.WasteMixed, models.VolumeLarge)
	hotspots := s.Hotspots()
	route, err := s.CreateRoute([]string{hotspots[0].ID}, "op-1")
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}

	// planned -> completed is illegal
	if _, err := s.UpdateRouteStatus(route.ID, models.RouteCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("planned->completed should fail, got %v", err)
	}

	started, err := s.UpdateRouteStatus(route.ID, models.RouteInProgress)
	if err != nil {
		t.Fatalf("planned->in_progress: %v", err)
	}
	if started.StartedAt == nil {
		t.Error("in_progress must set the start timestamp")
	}

	completed, err := s.UpdateRouteStatus(route.ID, models.RouteCompleted)
	if err != nil {
		t.Fatalf("in_progress->completed: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Error("completed must set the completion timestamp")
	}

	// Terminal: nothing moves out of completed
	if _, err := s.UpdateRouteStatus(route.ID, models.RouteCanceled); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("completed is terminal, got %v", err)
	}

	if _, err := s.UpdateRouteStatus("missing", models.RouteCanceled); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing route must fail with not-found, got %v", err)
	}
}

func TestUpdateAlertStatus(t *testing.T) {
	s := newTestStore()
	occ := register(t, s, 10.0001, 20.0001, models.WasteOrganic, models.VolumeLarge)
	if _, err := s.FinalizeOccurrence(occ.ID, 10, 20); err != nil {
		t.Fatalf("FinalizeOccurrence: %v", err)
	}
	alerts := s.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("setup: expected one alert")
	}

	updated, err := s.UpdateAlertStatus(alerts[0].ID, models.AlertAccepted, "coop-1")
	if err != nil {
		t.Fatalf("UpdateAlertStatus: %v", err)
	}
	if updated.Status != models.AlertAccepted || updated.CooperativeID != "coop-1" {
		t.Errorf("alert not updated: %+v", updated)
	}

	if _, err := s.UpdateAlertStatus("missing", models.AlertDeclined, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing alert must fail with not-found, got %v", err)
	}
}

func TestComputeMetrics(t *testing.T) {
	s := newTestStore()
	// Two open, one resolved recyclable with known resolution delay
	register(t, s, 10.0001, 20.0001, models.WasteMixed, models.VolumeLarge)
	register(t, s, 30.0001, 40.0001, models.WasteBulky, models.VolumeSmall)
	occ := register(t, s, 50.0001, 60.0001, models.WasteDryRecyclable, models.VolumeMedium)

	// Resolve 6 hours after creation
	s.SetClock(func() time.Time { return testNow.Add(6 * time.Hour) })
	if _, err := s.FinalizeOccurrence(occ.ID, 10, 30); err != nil {
		t.Fatalf("FinalizeOccurrence: %v", err)
	}
	route, err := s.CreateRoute([]string{s.Hotspots()[0].ID}, "op")
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}
	_ = route

	m := s.ComputeMetrics()
	if m.TotalOccurrences != 3 || m.OpenOccurrences != 2 || m.ResolvedOccurrences != 1 {
		t.Errorf("occurrence counts wrong: %+v", m)
	}
	if m.CollectedWeightKg != 20 {
		t.Errorf("collected weight = %d, want 20", m.CollectedWeightKg)
	}
	if m.RecoveredMaterials != 1 {
		t.Errorf("recovered materials = %d, want 1", m.RecoveredMaterials)
	}
	if m.AvgResolutionHours != 6 {
		t.Errorf("avg resolution hours = %f, want 6", m.AvgResolutionHours)
	}
	if m.RoutesToday != 1 {
		t.Errorf("routes today = %d, want 1", m.RoutesToday)
	}
	if m.NewAlerts != 1 {
		t.Errorf("new alerts = %d, want 1", m.NewAlerts)
	}
	// One cell went in_service via the route, the other two stay active...
	// minus the resolved cell which no longer emits a hotspot
	if m.ActiveHotspots != 1 {
		t.Errorf("active hotspots = %d, want 1", m.ActiveHotspots)
	}
}

func TestRunDemo(t *testing.T) {
	s := newTestStore()
	if _, err := s.RunDemo(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("demo without cameras must fail, got %v", err)
	}

	if _, err := s.AddCamera(-15.7967737, -47.8870557, "CAM-01"); err != nil {
		t.Fatalf("AddCamera: %v", err)
	}
	result, err := s.RunDemo()
	if err != nil {
		t.Fatalf("RunDemo: %v", err)
	}
	if result.Detections < 3 || result.Detections > 5 {
		t.Errorf("detections per camera = %d, want 3-5", result.Detections)
	}
	if result.Occurrences < 2 || result.Occurrences > 3 {
		t.Errorf("occurrences per camera = %d, want 2-3", result.Occurrences)
	}
	if len(s.Hotspots()) == 0 {
		t.Error("demo activity should produce at least one hotspot")
	}
}

func TestCameraLifecycle(t *testing.T) {
	s := newTestStore()
	cam, err := s.AddCamera(10, 20, "")
	if err != nil {
		t.Fatalf("AddCamera: %v", err)
	}
	if cam.ID != "CAM-001" || !cam.Active || cam.FieldOfView != 90 {
		t.Errorf("unexpected camera: %+v", cam)
	}
	if cam.Name == "" {
		t.Error("camera name should default when empty")
	}
	if err := s.RemoveCamera(cam.ID); err != nil {
		t.Fatalf("RemoveCamera: %v", err)
	}
	if err := s.RemoveCamera(cam.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.AddCamera(95, 0, "bad"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("out-of-range camera must fail, got %v", err)
	}
}
