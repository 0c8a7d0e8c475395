package geocode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/pkordes/eld-planner/backend/internal/domain"
)

// OpenCache opens (creating if needed) the SQLite geocode cache at path and
// ensures its schema. Use ":memory:" for a throwaway cache.
func OpenCache(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("geocode.OpenCache: open %q: %w", path, err)
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	const schema = `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		query TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		lat   REAL NOT NULL,
		lon   REAL NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("geocode.OpenCache: init schema: %w", err)
	}
	return db, nil
}

// Cached puts a SQLite lookup table in front of another Resolver.
// Only successful resolutions are stored; misses always reach next.
type Cached struct {
	db     *sql.DB
	next   Resolver
	logger *slog.Logger
}

// NewCached returns a Cached resolver. db must come from OpenCache.
func NewCached(db *sql.DB, next Resolver, logger *slog.Logger) *Cached {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{db: db, next: next, logger: logger}
}

// Resolve implements Resolver. Cache read and write failures are logged and
// otherwise ignored so a broken cache never blocks planning.
func (c *Cached) Resolve(ctx context.Context, query string) (domain.Place, error) {
	q := Normalize(query)
	if q == "" {
		return domain.Place{}, fmt.Errorf("geocode.Cached.Resolve: empty query: %w", ErrNotFound)
	}

	p, err := c.get(ctx, q)
	switch {
	case err == nil:
		return p, nil
	case !errors.Is(err, sql.ErrNoRows):
		c.logger.WarnContext(ctx, "geocode cache read failed", "query", q, "error", err)
	}

	p, err = c.next.Resolve(ctx, q)
	if err != nil {
		return domain.Place{}, err
	}
	if err := c.put(ctx, q, p); err != nil {
		c.logger.WarnContext(ctx, "geocode cache write failed", "query", q, "error", err)
	}
	return p, nil
}

func (c *Cached) get(ctx context.Context, q string) (domain.Place, error) {
	var p domain.Place
	err := c.db.QueryRowContext(ctx,
		`SELECT name, lat, lon FROM geocode_cache WHERE query = ?`, q,
	).Scan(&p.Name, &p.Lat, &p.Lon)
	if err != nil {
		return domain.Place{}, err
	}
	return p, nil
}

func (c *Cached) put(ctx context.Context, q string, p domain.Place) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO geocode_cache (query, name, lat, lon) VALUES (?, ?, ?, ?)`,
		q, p.Name, p.Lat, p.Lon,
	)
	if err != nil {
		return fmt.Errorf("insert geocode cache %q: %w", q, err)
	}
	return nil
}
