package domain

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAdjustForTrafficRushHour(t *testing.T) {
	// Monday 08:00, 10 km: rush 1.30 x mid-distance 1.10
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	got := AdjustForTraffic(100, 10, at)
	if !almostEqual(got, 143.0) {
		t.Fatalf("adjusted = %v, want 143.0", got)
	}
}

func TestAdjustForTrafficWeekendNight(t *testing.T) {
	// Saturday 03:00, 10 km: mid-distance 1.10 x weekend 0.90
	at := time.Date(2026, 3, 7, 3, 0, 0, 0, time.UTC)

	got := AdjustForTraffic(100, 10, at)
	if !almostEqual(got, 99.0) {
		t.Fatalf("adjusted = %v, want 99.0", got)
	}
	if got < 100*0.90 {
		t.Fatalf("adjusted %v fell below the 90%% floor", got)
	}
}

func TestAdjustForTrafficShortTripLateEvening(t *testing.T) {
	// Wednesday 23:00, 2 km: short-distance 1.20 only
	at := time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC)

	got := AdjustForTraffic(100, 2, at)
	if !almostEqual(got, 120.0) {
		t.Fatalf("adjusted = %v, want 120.0", got)
	}
}

func TestAdjustForTrafficLunchWindow(t *testing.T) {
	// Tuesday 12:30, 30 km: lunch 1.15 x long-distance 1.05
	at := time.Date(2026, 3, 3, 12, 30, 0, 0, time.UTC)

	got := AdjustForTraffic(100, 30, at)
	if !almostEqual(got, 120.75) {
		t.Fatalf("adjusted = %v, want 120.75", got)
	}
}

func TestAdjustForTrafficFloor(t *testing.T) {
	// Sunday 23:00, 30 km: 1.05 x 0.90 = 0.945, still above the floor;
	// the floor only clamps, it never raises below 90% of base.
	at := time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)

	got := AdjustForTraffic(100, 30, at)
	if !almostEqual(got, 94.5) {
		t.Fatalf("adjusted = %v, want 94.5", got)
	}
	if got < 90.0 {
		t.Fatalf("adjusted = %v, below the 90%% floor", got)
	}
}
