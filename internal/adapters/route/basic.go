package route

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"wakeup-route-service/internal/adapters/cache"
	"wakeup-route-service/internal/domain"
)

const demoOSRMBaseURL = "https://router.project-osrm.org"

// flat adjustment instead of the full traffic heuristic
const basicAdjustFactor = 1.15

// BasicEstimator is the last-resort route provider: the unauthenticated OSRM
// demo server, fronted by a short-lived coordinate-pair cache so repeated
// fallbacks within a few minutes cost nothing.
type BasicEstimator struct {
	session *http.Client
	baseURL string
	cache   *cache.TimedCache[domain.RouteEstimate]
}

func NewBasicEstimator(baseURL string, routeCache *cache.TimedCache[domain.RouteEstimate]) *BasicEstimator {
	if baseURL == "" {
		baseURL = demoOSRMBaseURL
	}
	if routeCache == nil {
		routeCache = cache.NewTimedCache[domain.RouteEstimate](5*time.Minute, 0)
	}

	return &BasicEstimator{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		cache:   routeCache,
	}
}

func (b *BasicEstimator) Name() string { return "basic" }

func (b *BasicEstimator) Estimate(ctx context.Context, start, end domain.Coordinates) (domain.RouteEstimate, bool) {
	key := pairKey(start, end)

	if est, ok := b.cache.Get(key); ok {
		return est, true
	}

	raw, err := fetchOSRMRoute(ctx, b.session, b.baseURL, start, end)
	if err != nil {
		log.Printf("provider=basic skipped: %v", err)
		return domain.RouteEstimate{}, false
	}

	est := domain.RouteEstimate{
		DurationMinutes: raw.DurationMinutes * basicAdjustFactor,
		DistanceKm:      raw.DistanceKm,
	}

	b.cache.Set(key, est)
	return est, true
}

func pairKey(start, end domain.Coordinates) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f", start.Lon, start.Lat, end.Lon, end.Lat)
}
