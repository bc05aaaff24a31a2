package route

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wakeup-route-service/internal/domain"
)

func TestOSRMEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// 1800 s over 12 km
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"duration":1800,"distance":12000}]}`))
	}))
	defer srv.Close()

	o := NewOSRMEstimator(srv.URL)
	// pin the clock to a quiet weekday hour so only the distance factor applies
	o.now = func() time.Time { return time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC) }

	est, ok := o.Estimate(context.Background(), domain.Coordinates{Lon: 13.40, Lat: 52.52}, domain.Coordinates{Lon: 13.45, Lat: 52.50})
	if !ok {
		t.Fatal("expected an estimate")
	}

	// 30 min base x 1.10 distance factor
	if math.Abs(est.DurationMinutes-33.0) > 1e-9 {
		t.Fatalf("duration = %v, want 33.0", est.DurationMinutes)
	}
	if est.DistanceKm != 12.0 {
		t.Fatalf("distance = %v, want 12.0", est.DistanceKm)
	}
}

func TestOSRMNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	o := NewOSRMEstimator(srv.URL)

	if _, ok := o.Estimate(context.Background(), domain.Coordinates{}, domain.Coordinates{}); ok {
		t.Fatal("expected no estimate for code=NoRoute")
	}
}

func TestOSRMServerErrorIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	o := NewOSRMEstimator(srv.URL)

	if _, ok := o.Estimate(context.Background(), domain.Coordinates{}, domain.Coordinates{}); ok {
		t.Fatal("expected no estimate after exhausted retries")
	}
}
