package ports

import (
	"context"

	"wakeup-route-service/internal/domain"
)

// Geocoder resolves a free-text place to coordinates.
// Lookup failures of any kind surface as ok=false ("not found").
type Geocoder interface {
	Resolve(ctx context.Context, place string) (domain.Coordinates, bool)
}

// PlaceIndex is the raw place-search backend behind the geocoder.
type PlaceIndex interface {
	// Return coordinates of the top match for the query.
	Search(ctx context.Context, query string) (domain.Coordinates, error)

	// Return up to limit matching place names for autocompletion.
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}
