package domain

// RouteEstimate is a single provider's answer for one coordinate pair.
// DurationMinutes is expected to be strictly positive for a usable estimate.
type RouteEstimate struct {
	DurationMinutes float64
	DistanceKm      float64
}
