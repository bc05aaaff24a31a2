package services

import (
	"context"
	"log"

	"wakeup-route-service/internal/domain"
	"wakeup-route-service/internal/ports"
)

// ETAService tries route providers in a fixed priority order and returns the
// first present, strictly positive estimate. Cheaper and cached providers
// belong later in the chain; there is deliberately no parallel fan-out.
type ETAService struct {
	providers []ports.RouteEstimator
}

func NewETAService(providers ...ports.RouteEstimator) *ETAService {
	return &ETAService{providers: providers}
}

func (s *ETAService) Name() string { return "chain" }

// Estimate returns ok=false only when every provider in the chain failed.
// That is terminal for the request; there are no retries beyond this point.
func (s *ETAService) Estimate(ctx context.Context, start, end domain.Coordinates) (domain.RouteEstimate, bool) {
	for _, p := range s.providers {
		est, ok := p.Estimate(ctx, start, end)
		if ok && est.DurationMinutes > 0 {
			return est, true
		}

		log.Printf("eta provider=%s unusable, trying next", p.Name())
	}

	return domain.RouteEstimate{}, false
}
