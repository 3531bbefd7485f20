package mphapi

import "strconv"

// PriceConfig configures the behavior of the pricing API. The zero value
// requests default server-side behavior for everything.
type PriceConfig struct {
	// IsCommercial uses commercial code crosswalks when set.
	IsCommercial bool `json:"is_commercial,omitempty"`

	// DisableCostBasedReimbursement turns off the default cost-based
	// reimbursement used for MAC priced line-items.
	DisableCostBasedReimbursement bool `json:"disable_cost_based_reimbursement,omitempty"`

	// UseCommercialSyntheticForNotAllowed uses a synthetic Medicare price
	// for line-items that are not allowed by Medicare.
	UseCommercialSyntheticForNotAllowed bool `json:"use_commercial_synthetic_for_not_allowed,omitempty"`

	// UseDRGFromGrouper always uses the DRG from the inpatient grouper.
	UseDRGFromGrouper bool `json:"use_drg_from_grouper,omitempty"`

	// UseBestDRGPrice prices with both the DRG supplied on the claim and the
	// DRG from the grouper and returns the lowest price.
	UseBestDRGPrice bool `json:"use_best_drg_price,omitempty"`

	// OverrideThreshold, when greater than 0, allows the pricer to override
	// NCCI edits and other overridable errors up to this amount and still
	// return a price.
	OverrideThreshold float64 `json:"override_threshold,omitempty"`

	// IncludeEdits includes code editor edit details in the response.
	IncludeEdits bool `json:"include_edits,omitempty"`
}

// Headers projects the config onto the transport headers the pricing
// endpoints read. It is a pure function: a false flag or a non-positive
// threshold emits no header at all (absence means default/off server-side,
// never an explicit "false").
func (c PriceConfig) Headers() map[string]string {
	headers := map[string]string{}
	if c.IsCommercial {
		headers["is-commercial"] = "true"
	}
	if c.DisableCostBasedReimbursement {
		headers["disable-cost-based-reimbursement"] = "true"
	}
	if c.UseCommercialSyntheticForNotAllowed {
		headers["use-commercial-synthetic-for-not-allowed"] = "true"
	}
	if c.OverrideThreshold > 0 {
		headers["override-threshold"] = strconv.FormatFloat(c.OverrideThreshold, 'f', -1, 64)
	}
	if c.IncludeEdits {
		headers["include-edits"] = "true"
	}
	if c.UseDRGFromGrouper {
		headers["use-drg-from-grouper"] = "true"
	}
	if c.UseBestDRGPrice {
		headers["use-best-drg-price"] = "true"
	}
	return headers
}
