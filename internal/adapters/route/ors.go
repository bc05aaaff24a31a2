package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"wakeup-route-service/internal/domain"
	"wakeup-route-service/internal/ports"
)

const orsBaseURL = "https://api.openrouteservice.org"

// ORSEstimator is the primary route provider: the OpenRouteService
// directions API, which needs an API key. Without a key, or on any failure,
// it delegates to its fallback rather than reporting absent itself.
type ORSEstimator struct {
	session  *http.Client
	apiKey   string
	baseURL  string
	profile  string
	fallback ports.RouteEstimator

	now func() time.Time // test hook
}

func NewORSEstimator(apiKey string, fallback ports.RouteEstimator) *ORSEstimator {
	return &ORSEstimator{
		session:  &http.Client{Timeout: 10 * time.Second},
		apiKey:   apiKey,
		baseURL:  orsBaseURL,
		profile:  "driving-car",
		fallback: fallback,
		now:      time.Now,
	}
}

func (o *ORSEstimator) Name() string { return "ors" }

type orsDirectionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type orsDirectionsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

func (o *ORSEstimator) Estimate(ctx context.Context, start, end domain.Coordinates) (domain.RouteEstimate, bool) {
	if o.apiKey == "" {
		return o.fallback.Estimate(ctx, start, end)
	}

	est, err := o.fetch(ctx, start, end)
	if err != nil {
		log.Printf("provider=ors fell back: %v", err)
		return o.fallback.Estimate(ctx, start, end)
	}

	est.DurationMinutes = domain.AdjustForTraffic(est.DurationMinutes, est.DistanceKm, o.now())
	return est, true
}

func (o *ORSEstimator) fetch(ctx context.Context, start, end domain.Coordinates) (domain.RouteEstimate, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(orsDirectionsRequest{
		Coordinates: [][]float64{start.CoordsToList(), end.CoordsToList()},
	})
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := doWithRetry(ctx, o.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create directions request: %w", err)
		}
		req.Header.Set("Authorization", o.apiKey)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded orsDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Features) == 0 || len(decoded.Features[0].Properties.Segments) == 0 {
		return domain.RouteEstimate{}, fmt.Errorf("directions response has no route")
	}

	seg := decoded.Features[0].Properties.Segments[0]

	return domain.RouteEstimate{
		DurationMinutes: seg.Duration / 60.0,
		DistanceKm:      seg.Distance / 1000.0,
	}, nil
}
