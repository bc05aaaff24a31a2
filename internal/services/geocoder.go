package services

import (
	"context"
	"log"
	"strings"
	"unicode"

	"golang.org/x/sync/singleflight"

	"wakeup-route-service/internal/domain"
	"wakeup-route-service/internal/ports"
)

// CachingGeocoder resolves place names through a cache, hitting the place
// index only on a miss. Concurrent lookups for the same place share a single
// upstream call, which also closes the check-then-set race on the cache.
type CachingGeocoder struct {
	cache ports.GeocodeCache
	index ports.PlaceIndex
	group singleflight.Group
}

func NewCachingGeocoder(geocodeCache ports.GeocodeCache, index ports.PlaceIndex) *CachingGeocoder {
	return &CachingGeocoder{cache: geocodeCache, index: index}
}

// Resolve returns the coordinates of the top match for place, or ok=false.
// Inputs shorter than two non-whitespace characters are rejected before any
// network call. No error leaves this method: every failure is "not found".
func (g *CachingGeocoder) Resolve(ctx context.Context, place string) (domain.Coordinates, bool) {
	place = strings.TrimSpace(place)
	if countNonSpace(place) < 2 {
		return domain.Coordinates{}, false
	}

	// Cache key is the literal trimmed input.
	if c, ok, err := g.cache.Get(ctx, place); err != nil {
		log.Printf("geocode cache read failed: %v", err)
	} else if ok {
		return c, true
	}

	v, err, _ := g.group.Do(place, func() (any, error) {
		c, err := g.index.Search(ctx, place)
		if err != nil {
			return nil, err
		}

		if err := g.cache.Put(ctx, place, c); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}

		return c, nil
	})
	if err != nil {
		log.Printf("geocode %q failed: %v", place, err)
		return domain.Coordinates{}, false
	}

	return v.(domain.Coordinates), true
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
