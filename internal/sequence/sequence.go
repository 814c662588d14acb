// Package sequence issues unique, monotonically increasing integer
// identifiers per named counter. Counters are durable rows, so values
// survive restarts, and allocation is a single atomic statement, so no
// two concurrent callers can ever receive the same value.
//
// Values are unique and increasing but not gap-free: an identifier
// allocated for a write that later fails is simply burned.
package sequence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Generator allocates the next value of a named counter.
type Generator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type postgresGenerator struct {
	pool *pgxpool.Pool
}

// NewPostgresGenerator returns a Generator backed by the counters table.
func NewPostgresGenerator(pool *pgxpool.Pool) Generator {
	return &postgresGenerator{pool: pool}
}

// Next increments and returns the counter in one round-trip. The upsert
// creates an absent counter at 0 and increments in the same statement;
// RETURNING hands back the post-increment value, so the read-modify-write
// is atomic on the database side.
func (g *postgresGenerator) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("sequence name must not be empty")
	}

	query := `
    INSERT INTO counters (name, sequence_value)
    VALUES ($1, 1)
    ON CONFLICT (name)
    DO UPDATE SET sequence_value = counters.sequence_value + 1
    RETURNING sequence_value
  `

	var value int64
	if err := g.pool.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance sequence %q: %w", name, err)
	}

	return value, nil
}
