// Package counter implements named, atomically incremented identifier
// counters on PostgreSQL.
package counter

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
)

// Repo allocates counter values.
type Repo struct {
	db postgres.DB
}

// New creates a new counter repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const allocateSQL = `
INSERT INTO part_counters (name, count) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET count = part_counters.count + 1
RETURNING count`

// Allocate increments the named counter, creating it on first use, and
// returns the new value. The first value of every counter is 1.
// Concurrent callers never receive the same value for the same name.
func (r *Repo) Allocate(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("part_counter: empty name")
	}

	var n int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, allocateSQL, name).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "part_counter", name)
	}
	return n, nil
}

// Current returns the last allocated value, or 0 if the counter was never used.
func (r *Repo) Current(ctx context.Context, name string) (int64, error) {
	var n int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT COALESCE((SELECT count FROM part_counters WHERE name = $1), 0)`, name,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "part_counter", name)
	}
	return n, nil
}
