package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wakeup-route-service/internal/domain"
)

// SQLGeocodeCache is a Postgres-backed geocode cache. Rows carry the time
// they were resolved; reads filter on age rather than deleting, so stale
// rows are simply overwritten by the next Put.
type SQLGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLGeocodeCache(db *sql.DB, ttl time.Duration) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, TTL: ttl}
}

// InitSchema creates the cache table when it does not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		place       TEXT PRIMARY KEY,
		lon         DOUBLE PRECISION NOT NULL,
		lat         DOUBLE PRECISION NOT NULL,
		resolved_at TIMESTAMPTZ NOT NULL
	);
	`

	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init geocode cache schema: %w", err)
	}

	return nil
}

func (s *SQLGeocodeCache) Get(ctx context.Context, place string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	q := `
	SELECT lon, lat
	FROM geocode_cache
	WHERE place = $1 AND resolved_at > $2;
	`

	cutoff := time.Now().Add(-s.TTL)

	var lon, lat float64
	err := s.DB.QueryRowContext(ctx, q, place, cutoff).Scan(&lon, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, true, nil
}

func (s *SQLGeocodeCache) Put(ctx context.Context, place string, c domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	q := `
	INSERT INTO geocode_cache (place, lon, lat, resolved_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (place) DO UPDATE
	SET lon = EXCLUDED.lon,
		lat = EXCLUDED.lat,
		resolved_at = EXCLUDED.resolved_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, place, c.Lon, c.Lat, time.Now()); err != nil {
		return fmt.Errorf("insert geocode cache place=%q: %w", place, err)
	}

	return nil
}
