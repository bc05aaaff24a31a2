package ports

import "context"

// WeatherProvider reports the current headline condition at a place
// (e.g. "Clear", "Rain"). Optional: the service runs without one.
type WeatherProvider interface {
	CurrentCondition(ctx context.Context, place string) (string, error)
}
