package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wakeup-route-service/internal/domain"
)

const redisGeocodePrefix = "geocode:"

// RedisGeocodeCache is a Redis-backed geocode cache. Expiry is delegated to
// Redis via per-key TTL, so entries disappear instead of being purged on read.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

func (r *RedisGeocodeCache) Get(ctx context.Context, place string) (domain.Coordinates, bool, error) {
	raw, err := r.client.Get(ctx, redisGeocodePrefix+place).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("redis geocode cache: get %q: %w", place, err)
	}

	c, err := decodeCoordinates(raw)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("redis geocode cache: entry %q: %w", place, err)
	}

	return c, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, place string, c domain.Coordinates) error {
	val := encodeCoordinates(c)
	if err := r.client.Set(ctx, redisGeocodePrefix+place, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis geocode cache: set %q: %w", place, err)
	}
	return nil
}

// Values are stored as "lon,lat" text; no schema beyond that.
func encodeCoordinates(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

func decodeCoordinates(raw string) (domain.Coordinates, error) {
	lonStr, latStr, ok := strings.Cut(raw, ",")
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("malformed coordinate value %q", raw)
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon: %w", err)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, nil
}
