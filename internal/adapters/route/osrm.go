package route

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"wakeup-route-service/internal/domain"
)

const publicOSRMBaseURL = "https://routing.openstreetmap.de/routed-car"

// OSRMEstimator is the secondary route provider: a public OSRM instance,
// no credentials needed. Failures surface as absent; it has no fallback of
// its own.
type OSRMEstimator struct {
	session *http.Client
	baseURL string

	now func() time.Time // test hook
}

func NewOSRMEstimator(baseURL string) *OSRMEstimator {
	if baseURL == "" {
		baseURL = publicOSRMBaseURL
	}

	return &OSRMEstimator{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (o *OSRMEstimator) Name() string { return "osrm" }

type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"` // seconds
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

func (o *OSRMEstimator) Estimate(ctx context.Context, start, end domain.Coordinates) (domain.RouteEstimate, bool) {
	raw, err := fetchOSRMRoute(ctx, o.session, o.baseURL, start, end)
	if err != nil {
		log.Printf("provider=osrm skipped: %v", err)
		return domain.RouteEstimate{}, false
	}

	raw.DurationMinutes = domain.AdjustForTraffic(raw.DurationMinutes, raw.DistanceKm, o.now())
	return raw, true
}

// fetchOSRMRoute queries an OSRM-compatible /route endpoint. Shared by the
// secondary and basic providers, which point at different instances.
func fetchOSRMRoute(
	ctx context.Context,
	client *http.Client,
	baseURL string,
	start, end domain.Coordinates,
) (domain.RouteEstimate, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		baseURL, start.Lon, start.Lat, end.Lon, end.Lat,
	)

	resp, err := doWithRetry(ctx, client, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create route request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteEstimate{}, fmt.Errorf("decode route response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return domain.RouteEstimate{}, fmt.Errorf("no route (code=%q)", decoded.Code)
	}

	return domain.RouteEstimate{
		DurationMinutes: decoded.Routes[0].Duration / 60.0,
		DistanceKm:      decoded.Routes[0].Distance / 1000.0,
	}, nil
}
