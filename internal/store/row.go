package store

import (
	"math"

	"github.com/google/uuid"

	"github.com/gyeh/mphapi"
)

// Row is the DB-ready representation of one priced claim or service line.
// Money values are stored as int64 cents.
type Row struct {
	RunID                   uuid.UUID
	ClaimID                 string
	LineNumber              string // empty for the claim-level row
	MedicareCents           int64
	AllowedCents            int64
	MedicareRepricingCode   string
	AllowedRepricingCode    string
	LineRepricingCode       string
	MedicareSource          string
	AllowedCalculationError string
	PricerResult            string
}

// Columns returns the ordered column names for COPY into priced_lines.
func Columns() []string {
	return []string{
		"run_id",
		"claim_id",
		"line_number",
		"medicare_cents",
		"allowed_cents",
		"medicare_repricing_code",
		"allowed_repricing_code",
		"line_repricing_code",
		"medicare_source",
		"allowed_calculation_error",
		"pricer_result",
	}
}

// CopyValues returns the row values in the same order as Columns(), suitable
// for pgx CopyFromSource.
func (r *Row) CopyValues() []any {
	return []any{
		r.RunID,
		r.ClaimID,
		r.LineNumber,
		r.MedicareCents,
		r.AllowedCents,
		r.MedicareRepricingCode,
		r.AllowedRepricingCode,
		r.LineRepricingCode,
		r.MedicareSource,
		r.AllowedCalculationError,
		r.PricerResult,
	}
}

// DollarsToCents converts a float64 dollar amount to int64 cents. Uses
// math.Round to avoid truncation bias.
func DollarsToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// Flatten turns one Pricing result into a claim-level row followed by one
// row per priced service line, all tagged with the run ID.
func Flatten(runID uuid.UUID, p mphapi.Pricing) []*Row {
	rows := make([]*Row, 0, 1+len(p.Services))
	rows = append(rows, &Row{
		RunID:                   runID,
		ClaimID:                 p.ClaimID,
		MedicareCents:           DollarsToCents(p.MedicareAmount),
		AllowedCents:            DollarsToCents(p.AllowedAmount),
		MedicareRepricingCode:   string(p.MedicareRepricingCode),
		AllowedRepricingCode:    string(p.AllowedRepricingCode),
		MedicareSource:          p.MedicareSource,
		AllowedCalculationError: p.AllowedCalculationError,
		PricerResult:            p.PricerResult,
	})
	for _, svc := range p.Services {
		rows = append(rows, &Row{
			RunID:                   runID,
			ClaimID:                 p.ClaimID,
			LineNumber:              svc.LineNumber,
			MedicareCents:           DollarsToCents(svc.MedicareAmount),
			AllowedCents:            DollarsToCents(svc.AllowedAmount),
			LineRepricingCode:       string(svc.RepricingCode),
			MedicareSource:          svc.MedicareSource,
			AllowedCalculationError: svc.AllowedCalculationError,
			PricerResult:            svc.PricerResult,
		})
	}
	return rows
}
