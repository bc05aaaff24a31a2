package ports

import (
	"context"

	"wakeup-route-service/internal/domain"
)

// GeocodeCache stores resolved place coordinates for a bounded time.
// Backends may be in-memory, Redis, or Postgres; cache errors are reported
// so callers can degrade to a plain upstream call.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (c domain.Coordinates, ok bool, err error)
	Put(ctx context.Context, place string, c domain.Coordinates) error
}
