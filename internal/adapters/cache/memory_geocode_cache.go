package cache

import (
	"context"
	"time"

	"wakeup-route-service/internal/domain"
)

// MemoryGeocodeCache adapts TimedCache to the GeocodeCache port. This is the
// default backend when neither Postgres nor Redis is configured.
type MemoryGeocodeCache struct {
	inner *TimedCache[domain.Coordinates]
}

func NewMemoryGeocodeCache(ttl time.Duration, limit int) *MemoryGeocodeCache {
	return &MemoryGeocodeCache{inner: NewTimedCache[domain.Coordinates](ttl, limit)}
}

func (m *MemoryGeocodeCache) Get(_ context.Context, place string) (domain.Coordinates, bool, error) {
	c, ok := m.inner.Get(place)
	return c, ok, nil
}

func (m *MemoryGeocodeCache) Put(_ context.Context, place string, c domain.Coordinates) error {
	m.inner.Set(place, c)
	return nil
}
