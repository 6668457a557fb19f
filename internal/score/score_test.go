package score

import (
	"math"
	"testing"
	"time"

	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

func openOccurrences(n int, band models.VolumeBand) []models.Occurrence {
	occs := make([]models.Occurrence, n)
	for i := range occs {
		occs[i] = models.Occurrence{Status: models.OccurrenceOpen, VolumeBand: band}
	}
	return occs
}

func TestRecurrenceMonotonicAndSaturating(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 15; n++ {
		got := Recurrence(openOccurrences(n, models.VolumeSmall))
		if got < prev {
			t.Fatalf("recurrence decreased at n=%d: %f < %f", n, got, prev)
		}
		prev = got
	}
	if got := Recurrence(openOccurrences(10, models.VolumeSmall)); got != 100 {
		t.Errorf("recurrence at 10 open = %f, want 100", got)
	}
	if got := Recurrence(openOccurrences(15, models.VolumeSmall)); got != 100 {
		t.Errorf("recurrence at 15 open = %f, want 100", got)
	}
}

func TestRecurrenceIgnoresResolved(t *testing.T) {
	occs := []models.Occurrence{
		{Status: models.OccurrenceOpen},
		{Status: models.OccurrenceResolved},
		{Status: models.OccurrencePrioritized},
	}
	if got := Recurrence(occs); got != 20 {
		t.Fatalf("recurrence = %f, want 20 (resolved must not count)", got)
	}
}

func TestCameraDetections(t *testing.T) {
	if got := CameraDetections(nil); got != 0 {
		t.Errorf("no detections = %f, want 0", got)
	}
	dets := []models.Detection{{Confidence: 0.8}, {Confidence: 0.7}}
	if got := CameraDetections(dets); got != 30 {
		t.Errorf("sum 1.5 * 20 = %f, want 30", got)
	}
	// 6+ detections at full confidence saturate
	var many []models.Detection
	for i := 0; i < 6; i++ {
		many = append(many, models.Detection{Confidence: 1})
	}
	if got := CameraDetections(many); got != 100 {
		t.Errorf("saturated detections = %f, want 100", got)
	}
}

func TestTimeSinceCleanup(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	if got := TimeSinceCleanup(nil, now); got != 50 {
		t.Errorf("never cleaned = %f, want default 50", got)
	}
	tenDaysAgo := now.Add(-10 * 24 * time.Hour)
	if got := TimeSinceCleanup(&tenDaysAgo, now); math.Abs(got-33.3) > 1e-9 {
		t.Errorf("10 days = %f, want 33.3", got)
	}
	// Partial days floor: 10 days 23h is still 10 whole days
	partial := now.Add(-10*24*time.Hour - 23*time.Hour)
	if got := TimeSinceCleanup(&partial, now); math.Abs(got-33.3) > 1e-9 {
		t.Errorf("10 days 23h = %f, want 33.3", got)
	}
	longAgo := now.Add(-60 * 24 * time.Hour)
	if got := TimeSinceCleanup(&longAgo, now); got != 100 {
		t.Errorf("60 days = %f, want capped 100", got)
	}
}

func TestEstimatedVolume(t *testing.T) {
	if got := EstimatedVolume(nil); got != 0 {
		t.Errorf("no occurrences = %f, want 0", got)
	}
	occs := []models.Occurrence{
		{VolumeBand: models.VolumeSmall},
		{VolumeBand: models.VolumeMedium},
		{VolumeBand: models.VolumeLarge},
	}
	// 1 + 2.5 + 5 = 8.5, * 10 = 85
	if got := EstimatedVolume(occs); got != 85 {
		t.Errorf("volume = %f, want 85", got)
	}
	if got := EstimatedVolume(openOccurrences(5, models.VolumeLarge)); got != 100 {
		t.Errorf("saturated volume = %f, want 100", got)
	}
}

// Worked example: 3 open large occurrences, no detections, never cleaned.
// recurrence=30, detections=0, time=50, volume=100 -> round(9+0+10+25)=44.
func TestFinalWorkedExample(t *testing.T) {
	now := time.Now()
	occs := openOccurrences(3, models.VolumeLarge)
	c := Components(occs, nil, nil, now)
	if c.Recurrence != 30 || c.CameraDetections != 0 || c.TimeSinceCleanup != 50 || c.EstimatedVolume != 100 {
		t.Fatalf("unexpected components: %+v", c)
	}
	final := Final(c)
	if final != 44 {
		t.Fatalf("final = %d, want 44", final)
	}
	if Categorize(final) != models.CategoryMedium {
		t.Fatalf("category = %s, want medium", Categorize(final))
	}
}

func TestFinalBounded(t *testing.T) {
	cases := []models.ScoreComponents{
		{},
		{Recurrence: 100, CameraDetections: 100, TimeSinceCleanup: 100, EstimatedVolume: 100},
		{Recurrence: 50, TimeSinceCleanup: 50},
	}
	for _, c := range cases {
		got := Final(c)
		if got < 0 || got > 100 {
			t.Errorf("final score %d out of [0,100] for %+v", got, c)
		}
	}
}

func TestCategorizeBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  models.ScoreCategory
	}{
		{0, models.CategoryLow},
		{24, models.CategoryLow},
		{25, models.CategoryMedium},
		{49, models.CategoryMedium},
		{50, models.CategoryHigh},
		{74, models.CategoryHigh},
		{75, models.CategoryCritical},
		{100, models.CategoryCritical},
	}
	for _, tc := range cases {
		if got := Categorize(tc.score); got != tc.want {
			t.Errorf("Categorize(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestExplainOmitsZeroLines(t *testing.T) {
	c := models.ScoreComponents{TimeSinceCleanup: 50}
	lines := Explain(c)
	if len(lines) != 1 {
		t.Fatalf("expected only the time line, got %v", lines)
	}
	c = models.ScoreComponents{Recurrence: 30, CameraDetections: 10, TimeSinceCleanup: 50, EstimatedVolume: 100}
	if lines := Explain(c); len(lines) != 4 {
		t.Fatalf("expected four lines, got %v", lines)
	}
}
