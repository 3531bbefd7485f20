// Package export flattens pricing results into a Parquet file, one row per
// priced line, for downstream analytics.
package export

import (
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/mphapi"
)

// PricedLineRow mirrors the Parquet schema for a single priced line. Claim
// totals repeat on every line so each row is self-contained; line_number is
// empty on the claim-level row.
type PricedLineRow struct {
	RunID   string `parquet:"run_id"`
	ClaimID string `parquet:"claim_id"`

	LineNumber      string  `parquet:"line_number"`
	MedicareAmount  float64 `parquet:"medicare_amount"`
	AllowedAmount   float64 `parquet:"allowed_amount"`
	RepricingCode   string  `parquet:"repricing_code"`
	RepricingNote   string  `parquet:"repricing_note"`
	MedicareSource  string  `parquet:"medicare_source"`
	PricerResult    string  `parquet:"pricer_result"`
	StatusIndicator *string `parquet:"status_indicator,optional"`
	PaymentAPC      *string `parquet:"payment_apc,optional"`

	ClaimMedicareAmount  float64 `parquet:"claim_medicare_amount"`
	ClaimAllowedAmount   float64 `parquet:"claim_allowed_amount"`
	ClaimRepricingCode   string  `parquet:"claim_repricing_code"`
	AllowedRepricingCode string  `parquet:"allowed_repricing_code"`
}

// Rows flattens pricing results into Parquet rows tagged with runID.
func Rows(runID string, pricings []mphapi.Pricing) []PricedLineRow {
	var rows []PricedLineRow
	for _, p := range pricings {
		claim := PricedLineRow{
			RunID:                runID,
			ClaimID:              p.ClaimID,
			MedicareAmount:       p.MedicareAmount,
			AllowedAmount:        p.AllowedAmount,
			RepricingNote:        p.MedicareRepricingNote,
			MedicareSource:       p.MedicareSource,
			PricerResult:         p.PricerResult,
			ClaimMedicareAmount:  p.MedicareAmount,
			ClaimAllowedAmount:   p.AllowedAmount,
			ClaimRepricingCode:   string(p.MedicareRepricingCode),
			AllowedRepricingCode: string(p.AllowedRepricingCode),
		}
		rows = append(rows, claim)
		for _, svc := range p.Services {
			row := PricedLineRow{
				RunID:                runID,
				ClaimID:              p.ClaimID,
				LineNumber:           svc.LineNumber,
				MedicareAmount:       svc.MedicareAmount,
				AllowedAmount:        svc.AllowedAmount,
				RepricingCode:        string(svc.RepricingCode),
				RepricingNote:        svc.RepricingNote,
				MedicareSource:       svc.MedicareSource,
				PricerResult:         svc.PricerResult,
				ClaimMedicareAmount:  p.MedicareAmount,
				ClaimAllowedAmount:   p.AllowedAmount,
				ClaimRepricingCode:   string(p.MedicareRepricingCode),
				AllowedRepricingCode: string(p.AllowedRepricingCode),
			}
			if svc.StatusIndicator != "" {
				row.StatusIndicator = &svc.StatusIndicator
			}
			if svc.PaymentAPC != "" {
				row.PaymentAPC = &svc.PaymentAPC
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// Write flattens pricings and writes them to a Parquet file at path.
// Returns the number of rows written.
func Write(path, runID string, pricings []mphapi.Pricing) (int64, error) {
	rows := Rows(runID, pricings)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create parquet file: %w", err)
	}
	defer f.Close()

	w := goparquet.NewGenericWriter[PricedLineRow](f)
	n, err := w.Write(rows)
	if err != nil {
		return 0, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close parquet file: %w", err)
	}
	return int64(n), nil
}
