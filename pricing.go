package mphapi

// ClaimRepricingCode explains the methodology used to price a whole claim.
type ClaimRepricingCode string

const (
	ClaimRepricingMedicare            ClaimRepricingCode = "MED"
	ClaimRepricingContractPricing     ClaimRepricingCode = "CON"
	ClaimRepricingRBPPricing          ClaimRepricingCode = "RBP"
	ClaimRepricingSingleCaseAgreement ClaimRepricingCode = "SCA"
	ClaimRepricingNeedsMoreInfo       ClaimRepricingCode = "IFO"
)

// LineRepricingCode explains the methodology used to price a single line item.
type LineRepricingCode string

// Line-level Medicare repricing codes.
const (
	LineRepricingMedicare          LineRepricingCode = "MED"
	LineRepricingSyntheticMedicare LineRepricingCode = "SYN"
	LineRepricingCostPercent       LineRepricingCode = "CST"
	LineRepricingMedicarePercent   LineRepricingCode = "MPT"
	LineRepricingMedicareNoOutlier LineRepricingCode = "MNO"
	LineRepricingBilledPercent     LineRepricingCode = "BIL"
	LineRepricingFeeSchedule       LineRepricingCode = "FSC"
	LineRepricingPerDiem           LineRepricingCode = "PDM"
	LineRepricingFlatRate          LineRepricingCode = "FLT"
	LineRepricingLimitedToBilled   LineRepricingCode = "LTB"
)

// Line-level zero dollar repricing explanations.
const (
	LineRepricingNotAllowedByMedicare  LineRepricingCode = "NAM"
	LineRepricingPackaged              LineRepricingCode = "PKG"
	LineRepricingNeedsMoreInfo         LineRepricingCode = "IFO"
	LineRepricingProcedureCodeProblem  LineRepricingCode = "CPB"
	LineRepricingNotRepricedPerRequest LineRepricingCode = "NRP"
)

// HospitalType is the Medicare classification of a facility.
type HospitalType string

const (
	HospitalTypeAcuteCare      HospitalType = "Acute Care Hospitals"
	HospitalTypeCriticalAccess HospitalType = "Critical Access Hospitals"
	HospitalTypeChildrens      HospitalType = "Childrens"
	HospitalTypePsychiatric    HospitalType = "Psychiatric"
	HospitalTypeAcuteCareDOD   HospitalType = "Acute Care - Department of Defense"
)

// InpatientPriceDetail contains pricing details for an inpatient claim.
type InpatientPriceDetail struct {
	DRG                            string  `json:"drg,omitempty"`                               // DRG code used to price the claim
	DRGAmount                      float64 `json:"drg_amount,omitempty"`                        // amount Medicare would pay for the DRG
	PassthroughAmount              float64 `json:"passthrough_amount,omitempty"`                // per diem amount for capital-related costs, direct medical education, and other costs
	OutlierAmount                  float64 `json:"outlier_amount,omitempty"`                    // additional amount paid for high cost cases
	IndirectMedicalEducationAmount float64 `json:"indirect_medical_education_amount,omitempty"` // additional amount paid for teaching hospitals
	DisproportionateShareAmount    float64 `json:"disproportionate_share_amount,omitempty"`     // additional amount paid for hospitals with a high number of low-income patients
	UncompensatedCareAmount        float64 `json:"uncompensated_care_amount,omitempty"`         // additional amount paid for patients unable to pay for their care
	ReadmissionAdjustmentAmount    float64 `json:"readmission_adjustment_amount,omitempty"`     // adjustment for hospitals with high readmission rates
	ValueBasedPurchasingAmount     float64 `json:"value_based_purchasing_amount,omitempty"`     // adjustment based on quality measures
}

// OutpatientPriceDetail contains pricing details for an outpatient claim.
type OutpatientPriceDetail struct {
	OutlierAmount                         float64 `json:"outlier_amount,omitempty"`                             // additional amount paid for high cost cases
	FirstPassthroughDrugOffsetAmount      float64 `json:"first_passthrough_drug_offset_amount,omitempty"`       // amount built into the APC payment for certain drugs
	SecondPassthroughDrugOffsetAmount     float64 `json:"second_passthrough_drug_offset_amount,omitempty"`      // amount built into the APC payment for certain drugs
	ThirdPassthroughDrugOffsetAmount      float64 `json:"third_passthrough_drug_offset_amount,omitempty"`       // amount built into the APC payment for certain drugs
	FirstDeviceOffsetAmount               float64 `json:"first_device_offset_amount,omitempty"`                 // amount built into the APC payment for certain devices
	SecondDeviceOffsetAmount              float64 `json:"second_device_offset_amount,omitempty"`                // amount built into the APC payment for certain devices
	FullOrPartialDeviceCreditOffsetAmount float64 `json:"full_or_partial_device_credit_offset_amount,omitempty"` // credit for devices supplied for free or at a reduced cost
	TerminatedDeviceProcedureOffsetAmount float64 `json:"terminated_device_procedure_offset_amount,omitempty"`  // credit for devices not used due to a terminated procedure
}

// ProviderDetail contains basic information about the provider and/or
// locality used for pricing. Not all fields are returned with every pricing
// request; for example the CCN is only returned for facilities which have
// one, such as hospitals.
type ProviderDetail struct {
	CCN            string       `json:"ccn,omitempty"`             // CMS Certification Number for the facility
	MAC            int          `json:"mac,omitempty"`             // Medicare Administrative Contractor number
	Locality       int          `json:"locality,omitempty"`        // geographic locality number used for pricing
	RuralIndicator string       `json:"rural_indicator,omitempty"` // Rural (R), Super Rural (B), or Urban (blank)
	SpecialtyType  string       `json:"specialty_type,omitempty"`  // Medicare provider specialty type
	HospitalType   HospitalType `json:"hospital_type,omitempty"`   // type of hospital
}

// ClaimEdits contains errors which cause the claim to be denied, rejected,
// suspended, or returned to the provider. The wire keys are PascalCase; they
// come straight from the code editor and are preserved as-is.
type ClaimEdits struct {
	ClaimOverallDisposition          string   `json:"ClaimOverallDisposition,omitempty"`
	ClaimRejectionDisposition        string   `json:"ClaimRejectionDisposition,omitempty"`
	ClaimDenialDisposition           string   `json:"ClaimDenialDisposition,omitempty"`
	ClaimReturnToProviderDisposition string   `json:"ClaimReturnToProviderDisposition,omitempty"`
	ClaimSuspensionDisposition       string   `json:"ClaimSuspensionDisposition,omitempty"`
	LineItemRejectionDisposition     string   `json:"LineItemRejectionDisposition,omitempty"`
	LineItemDenialDisposition        string   `json:"LineItemDenialDisposition,omitempty"`
	ClaimRejectionReasons            []string `json:"ClaimRejectionReasons,omitempty"`
	ClaimDenialReasons               []string `json:"ClaimDenialReasons,omitempty"`
	ClaimReturnToProviderReasons     []string `json:"ClaimReturnToProviderReasons,omitempty"`
	ClaimSuspensionReasons           []string `json:"ClaimSuspensionReasons,omitempty"`
	LineItemRejectionReasons         []string `json:"LineItemRejectionReasons,omitempty"`
	LineItemDenialReasons            []string `json:"LineItemDenialReasons,omitempty"`
}

// LineEdits contains errors which cause a line item to be unable to be priced.
type LineEdits struct {
	DenialOrRejectionText string   `json:"denial_or_rejection_text,omitempty"`
	ProcedureEdits        []string `json:"procedure_edits,omitempty"`
	Modifier1Edits        []string `json:"modifier1_edits,omitempty"`
	Modifier2Edits        []string `json:"modifier2_edits,omitempty"`
	Modifier3Edits        []string `json:"modifier3_edits,omitempty"`
	Modifier4Edits        []string `json:"modifier4_edits,omitempty"`
	Modifier5Edits        []string `json:"modifier5_edits,omitempty"`
	DataEdits             []string `json:"data_edits,omitempty"`
	RevenueEdits          []string `json:"revenue_edits,omitempty"`
	ProfessionalEdits     []string `json:"professional_edits,omitempty"`
}

// Pricing contains the results of a pricing request for one claim.
type Pricing struct {
	ClaimID                 string                 `json:"claim_id,omitempty"`                 // unique identifier for the claim (copied from input)
	MedicareAmount          float64                `json:"medicare_amount,omitempty"`          // amount Medicare would pay for the claim
	AllowedAmount           float64                `json:"allowed_amount,omitempty"`           // allowed amount based on contract or RBP pricing
	AllowedCalculationError string                 `json:"allowed_calculation_error,omitempty"` // reason the allowed amount was not calculated
	MedicareRepricingCode   ClaimRepricingCode     `json:"medicare_repricing_code,omitempty"`  // methodology used to calculate Medicare (MED or IFO)
	MedicareRepricingNote   string                 `json:"medicare_repricing_note,omitempty"`  // note explaining approach for pricing or reason for error
	AllowedRepricingCode    ClaimRepricingCode     `json:"allowed_repricing_code,omitempty"`   // methodology used to calculate the allowed amount (CON, RBP, SCA, or IFO)
	AllowedRepricingNote    string                 `json:"allowed_repricing_note,omitempty"`   // note explaining approach for pricing or reason for error
	MedicareStdDev          float64                `json:"medicare_std_dev,omitempty"`         // standard deviation of the estimated Medicare amount (estimates service only)
	MedicareSource          string                 `json:"medicare_source,omitempty"`          // source of the Medicare amount (e.g. physician fee schedule, OPPS)
	InpatientPriceDetail    *InpatientPriceDetail  `json:"inpatient_price_detail,omitempty"`   // details about the inpatient pricing
	OutpatientPriceDetail   *OutpatientPriceDetail `json:"outpatient_price_detail,omitempty"`  // details about the outpatient pricing
	ProviderDetail          *ProviderDetail        `json:"provider_detail,omitempty"`          // provider details used when pricing the claim
	EditDetail              *ClaimEdits            `json:"edit_detail,omitempty"`              // errors which cause the claim to be denied, rejected, suspended, or returned to the provider
	PricerResult            string                 `json:"pricer_result,omitempty"`            // pricer return details
	Services                []PricedService        `json:"services,omitempty"`                 // pricing for each service line on the claim, correlated by line number
	EditError               *ResponseError         `json:"edit_error,omitempty"`               // an error that occurred during some step of the pricing process
}

// PricedService contains the results of a pricing request for a single
// service line.
type PricedService struct {
	LineNumber                  string            `json:"line_number,omitempty"`                   // number of the service line item (copied from input)
	ProviderDetail              *ProviderDetail   `json:"provider_detail,omitempty"`               // provider details used when pricing the service if different than the claim
	MedicareAmount              float64           `json:"medicare_amount,omitempty"`               // amount Medicare would pay for the service
	AllowedAmount               float64           `json:"allowed_amount,omitempty"`                // allowed amount based on contract or RBP pricing
	AllowedCalculationError     string            `json:"allowed_calculation_error,omitempty"`     // reason the allowed amount was not calculated
	RepricingCode               LineRepricingCode `json:"repricing_code,omitempty"`                // methodology used to calculate Medicare
	RepricingNote               string            `json:"repricing_note,omitempty"`                // note explaining approach for pricing or reason for error
	TechnicalComponentAmount    float64           `json:"technical_component_amount,omitempty"`    // amount Medicare would pay for the technical component
	ProfessionalComponentAmount float64           `json:"professional_component_amount,omitempty"` // amount Medicare would pay for the professional component
	MedicareStdDev              float64           `json:"medicare_std_dev,omitempty"`              // standard deviation of the estimated Medicare amount (estimates service only)
	MedicareSource              string            `json:"medicare_source,omitempty"`               // source of the Medicare amount
	PricerResult                string            `json:"pricer_result,omitempty"`                 // pricing service return details
	StatusIndicator             string            `json:"status_indicator,omitempty"`              // code which gives more detail about how Medicare pays for the service
	PaymentIndicator            string            `json:"payment_indicator,omitempty"`             // text which explains the type of payment for Medicare
	PaymentAPC                  string            `json:"payment_apc,omitempty"`                   // Ambulatory Payment Classification
	EditDetail                  *LineEdits        `json:"edit_detail,omitempty"`                   // errors which cause the line item to be unable to be priced
}
