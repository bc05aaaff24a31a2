package ports

import (
	"context"

	"wakeup-route-service/internal/domain"
)

// Contract for estimating travel time between two coordinate pairs.
// Implementations return ok=false instead of an error: a failed provider is
// an expected state the caller falls through, not an exceptional one.
type RouteEstimator interface {
	// Short provider label used in log lines.
	Name() string

	// Return a travel estimate, or ok=false when no usable route was found.
	Estimate(ctx context.Context, start, end domain.Coordinates) (est domain.RouteEstimate, ok bool)
}
