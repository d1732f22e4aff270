// Package postgres implements the intake Repository against PostgreSQL
// using database/sql and lib/pq. Schema lives in migrations/ and is applied
// by cmd/migrate at deploy time.
package postgres

import (
	"context"
	"database/sql"
)

// Repo implements intake.Repository.
type Repo struct{ db *sql.DB }

// NewRepo creates a Postgres-backed intake repository.
func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// Ping verifies connectivity with a pool round trip.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
