package store_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/mphapi"
	"github.com/gyeh/mphapi/internal/logging"
	"github.com/gyeh/mphapi/internal/store"
)

const (
	testPort     = 15433
	testDB       = "mphtest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	if os.Getenv("MPH_TEST_PG") == "" {
		fmt.Fprintln(os.Stderr, "SKIP: set MPH_TEST_PG=1 to run embedded-postgres store tests")
		os.Exit(0)
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start embedded postgres: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "stop embedded postgres: %v\n", err)
	}
	os.Exit(code)
}

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	pool, err := store.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := store.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return pool
}

func TestSaveRun(t *testing.T) {
	ctx := context.Background()
	pool := newTestPool(t)
	log := logging.Setup("json", false)

	runID := uuid.New()
	pricings := []mphapi.Pricing{
		{
			ClaimID:               "claim-1",
			MedicareAmount:        6041.38,
			MedicareRepricingCode: mphapi.ClaimRepricingMedicare,
			Services: []mphapi.PricedService{
				{LineNumber: "1", MedicareAmount: 1000.50},
				{LineNumber: "2", MedicareAmount: 5040.88},
			},
		},
		{
			ClaimID:               "claim-2",
			MedicareAmount:        150,
			MedicareRepricingCode: mphapi.ClaimRepricingNeedsMoreInfo,
		},
	}

	n, err := store.SaveRun(ctx, pool, log, runID, "testdata/claims.json", pricings)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if n != 5 {
		t.Errorf("rows written = %d, want 5", n)
	}

	var claimCount int
	err = pool.QueryRow(ctx,
		`SELECT claim_count FROM pricing_runs WHERE run_id = $1`, runID,
	).Scan(&claimCount)
	if err != nil {
		t.Fatalf("query run: %v", err)
	}
	if claimCount != 2 {
		t.Errorf("claim_count = %d, want 2", claimCount)
	}

	var medicareCents int64
	err = pool.QueryRow(ctx,
		`SELECT medicare_cents FROM priced_lines WHERE run_id = $1 AND claim_id = 'claim-1' AND line_number = ''`,
		runID,
	).Scan(&medicareCents)
	if err != nil {
		t.Fatalf("query claim row: %v", err)
	}
	if medicareCents != 604138 {
		t.Errorf("claim medicare_cents = %d", medicareCents)
	}

	var lineCount int
	err = pool.QueryRow(ctx,
		`SELECT count(*) FROM priced_lines WHERE run_id = $1 AND line_number <> ''`, runID,
	).Scan(&lineCount)
	if err != nil {
		t.Fatalf("query lines: %v", err)
	}
	if lineCount != 2 {
		t.Errorf("line rows = %d, want 2", lineCount)
	}
}

func TestSaveRunEmpty(t *testing.T) {
	ctx := context.Background()
	pool := newTestPool(t)
	log := logging.Setup("json", false)

	n, err := store.SaveRun(ctx, pool, log, uuid.New(), "empty.json", nil)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if n != 0 {
		t.Errorf("rows written = %d, want 0", n)
	}
}
