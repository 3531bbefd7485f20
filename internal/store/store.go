// Package store persists pricing results to Postgres for local analysis of
// pricing runs. It is operator tooling over results the API already
// returned; it never feeds responses back to callers.
package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/mphapi"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the pricing_runs and priced_lines tables if missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SaveRun records one pricing run: a run header plus a claim-level row and
// per-line rows for every Pricing, bulk-loaded via the COPY protocol.
// Returns the number of priced_lines rows written.
func SaveRun(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID, sourceFile string, pricings []mphapi.Pricing) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO pricing_runs (run_id, source_file, claim_count) VALUES ($1, $2, $3)`,
		runID, sourceFile, len(pricings),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	var rows []*Row
	for _, p := range pricings {
		rows = append(rows, Flatten(runID, p)...)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"priced_lines"}, Columns(), newRowSource(rows))
	if err != nil {
		return 0, fmt.Errorf("copy priced lines: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	log.Info().
		Str("run_id", runID.String()).
		Int("claims", len(pricings)).
		Int64("rows", n).
		Msg("pricing run saved")
	return n, nil
}
