package mphapi

// FormType identifies the form used to submit the claim (from CLM05_02).
type FormType string

const (
	FormTypeHCFA FormType = "HCFA"
	FormTypeUB04 FormType = "UB-04"
)

// BillTypeSequence describes where the claim is at in its billing lifecycle
// (from CLM05_03).
type BillTypeSequence string

const (
	BillTypeSequenceNonPay                 BillTypeSequence = "G"
	BillTypeSequenceAdmitThroughDischarge  BillTypeSequence = "H"
	BillTypeSequenceFirstInterim           BillTypeSequence = "I"
	BillTypeSequenceContinuingInterim      BillTypeSequence = "J"
	BillTypeSequenceLastInterim            BillTypeSequence = "K"
	BillTypeSequenceLateCharge             BillTypeSequence = "M"
	BillTypeSequenceFirstInterimDeprecated BillTypeSequence = "P"
	BillTypeSequenceReplacement            BillTypeSequence = "Q"
	BillTypeSequenceVoidOrCancel           BillTypeSequence = "0"
	BillTypeSequenceFinalClaim             BillTypeSequence = "1"
	BillTypeSequenceCWFAdjustment          BillTypeSequence = "2"
	BillTypeSequenceCMSAdjustment          BillTypeSequence = "3"
	BillTypeSequenceIntermediaryAdjustment BillTypeSequence = "4"
	BillTypeSequenceOtherAdjustment        BillTypeSequence = "5"
	BillTypeSequenceOIGAdjustment          BillTypeSequence = "6"
	BillTypeSequenceMSPAdjustment          BillTypeSequence = "7"
	BillTypeSequenceQIOAdjustment          BillTypeSequence = "8"
	BillTypeSequenceProviderAdjustment     BillTypeSequence = "9"
)

// SexType is the biological sex of the patient for clinical purposes
// (from DMG02).
type SexType int

const (
	SexUnknown SexType = 0
	SexMale    SexType = 1
	SexFemale  SexType = 2
)

// Provider identifies the billing provider on a claim or an individual
// service line. All fields default to empty values; absence never fails
// locally. NPI and ZIP are required by the pricing service, the rest improve
// match quality.
type Provider struct {
	NPI                      string   `json:"npi,omitempty"`                        // National Provider Identifier (from NM109, required)
	ProviderTaxID            string   `json:"provider_tax_id,omitempty"`            // Tax ID of the provider (from REF EI, highly recommended)
	ProviderPhones           []string `json:"provider_phones,omitempty"`            // Phone numbers of the provider (from PER, optional)
	ProviderFaxes            []string `json:"provider_faxes,omitempty"`             // Fax numbers of the provider (from PER, optional)
	ProviderEmails           []string `json:"provider_emails,omitempty"`            // Email addresses of the provider (from PER, optional)
	ProviderLicenseNumber    string   `json:"provider_license_number,omitempty"`    // State license number (from REF 0B, optional)
	ProviderCommercialNumber string   `json:"provider_commercial_number,omitempty"` // Commercial number used by some payers (from REF G2, optional)
	ProviderTaxonomy         string   `json:"provider_taxonomy,omitempty"`          // Taxonomy code (from PRV03, highly recommended)
	ProviderFirstName        string   `json:"provider_first_name,omitempty"`        // First name (from NM104, highly recommended)
	ProviderLastName         string   `json:"provider_last_name,omitempty"`         // Last name (from NM103, highly recommended)
	ProviderOrgName          string   `json:"provider_org_name,omitempty"`          // Organization name (from NM103, highly recommended)
	ProviderAddress1         string   `json:"provider_address1,omitempty"`          // Address line 1 (from N301, highly recommended)
	ProviderAddress2         string   `json:"provider_address2,omitempty"`          // Address line 2 (from N302, optional)
	ProviderCity             string   `json:"provider_city,omitempty"`              // City (from N401, highly recommended)
	ProviderState            string   `json:"provider_state,omitempty"`             // State (from N402, highly recommended)
	ProviderZIP              string   `json:"provider_zip,omitempty"`               // ZIP code (from N403, required)
}

// Diagnosis is an ICD diagnosis code with an optional description.
type Diagnosis struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// ValueCode is a numeric value related to the patient or claim (from HI BE).
type ValueCode struct {
	Code   string  `json:"code,omitempty"`   // type of value provided (from HIxx_02)
	Amount float64 `json:"amount,omitempty"` // amount associated with the value code (from HIxx_05)
}

// Service is a single line item on a claim (from the LX loop). Provider
// fields are only needed when the rendering provider differs from the
// claim-level provider.
type Service struct {
	Provider

	LineNumber         string   `json:"line_number,omitempty"`         // unique line number, correlates with PricedService (from LX01)
	RevCode            string   `json:"rev_code,omitempty"`            // revenue code (from SV2_01)
	ProcedureCode      string   `json:"procedure_code,omitempty"`      // procedure code (from SV101_02 / SV202_02)
	ProcedureModifiers []string `json:"procedure_modifiers,omitempty"` // procedure modifiers (from SV101_03-06 / SV202_03-06)
	DrugCode           string   `json:"drug_code,omitempty"`           // National Drug Code (from LIN03)
	DateFrom           Date     `json:"date_from,omitzero"`            // begin date of service (from DTP 472)
	DateThrough        Date     `json:"date_through,omitzero"`         // end date of service (from DTP 472)
	BilledAmount       float64  `json:"billed_amount,omitempty"`       // billed charge for the service (from SV102 / SV203)
	AllowedAmount      float64  `json:"allowed_amount,omitempty"`      // plan allowed amount for the service (non-EDI)
	PaidAmount         float64  `json:"paid_amount,omitempty"`         // plan paid amount for the service (non-EDI)
	Quantity           float64  `json:"quantity,omitempty"`            // quantity of the service (from SV104 / SV205)
	Units              string   `json:"units,omitempty"`               // units connected to the quantity (from SV103 / SV204)
	PlaceOfService     string   `json:"place_of_service,omitempty"`    // place of service code (from SV105)
	DiagnosisPointers  []int    `json:"diagnosis_pointers,omitempty"`  // 1-based indices into Claim.OtherDiagnoses (from SV107)
	AmbulancePickupZIP string   `json:"ambulance_pickup_zip,omitempty"` // supplied if different than claim-level value (from NM1 PW)
}

// Claim is a billable healthcare encounter submitted for pricing. It is a
// permissive input contract: fields the caller does not know stay at their
// zero value and the pricing service decides what it can work with.
//
// Service order is significant but not guaranteed to match line numbers;
// results must be correlated by Service.LineNumber. DiagnosisPointers on a
// service index into OtherDiagnoses 1-based; a dangling pointer is a caller
// input defect and is not rejected locally.
type Claim struct {
	Provider

	ClaimID            string           `json:"claim_id,omitempty"`             // unique identifier for the claim (from REF D9)
	PlanCode           string           `json:"plan_code,omitempty"`            // identifies the subscriber's plan (from SBR03)
	PatientSex         SexType          `json:"patient_sex,omitempty"`          // 0:Unknown, 1:Male, 2:Female (from DMG02)
	PatientDateOfBirth Date             `json:"patient_date_of_birth,omitzero"` // from DMG03
	PatientHeightInCM  float64          `json:"patient_height_in_cm,omitempty"` // from HI value A9, MEA value HT
	PatientWeightInKG  float64          `json:"patient_weight_in_kg,omitempty"` // from HI value A8, PAT08, CR102 (ambulance only)
	AmbulancePickupZIP string           `json:"ambulance_pickup_zip,omitempty"` // from HI BE A0 or NM1 PW
	FormType           FormType         `json:"form_type,omitempty"`            // HCFA or UB-04 (from CLM05_02)
	BillTypeOrPOS      string           `json:"bill_type_or_pos,omitempty"`     // facility type where services were rendered (from CLM05_01)
	BillTypeSequence   BillTypeSequence `json:"bill_type_sequence,omitempty"`   // billing lifecycle position (from CLM05_03)
	BilledAmount       float64          `json:"billed_amount,omitempty"`        // billed amount from provider (from CLM02)
	AllowedAmount      float64          `json:"allowed_amount,omitempty"`       // amount allowed by the plan, member and plan responsibility (non-EDI)
	PaidAmount         float64          `json:"paid_amount,omitempty"`          // amount paid by the plan (non-EDI)
	DateFrom           Date             `json:"date_from,omitzero"`             // earliest service date, or statement date if not found
	DateThrough        Date             `json:"date_through,omitzero"`          // latest service date, or statement date if not found
	DischargeStatus    string           `json:"discharge_status,omitempty"`     // patient status at discharge (from CL103)
	AdmitDiagnosis     string           `json:"admit_diagnosis,omitempty"`      // ICD diagnosis at admission (from HI ABJ or BJ)
	PrincipalDiagnosis *Diagnosis       `json:"principal_diagnosis,omitempty"`  // nil only when not yet known (from HI ABK or BK)
	OtherDiagnoses     []Diagnosis      `json:"other_diagnoses,omitempty"`      // order-significant, referenced by diagnosis pointers (from HI ABF or BF)
	PrincipalProcedure string           `json:"principal_procedure,omitempty"`  // principal ICD procedure (from HI BBR or BR)
	OtherProcedures    []string         `json:"other_procedures,omitempty"`     // other ICD procedures (from HI BBQ or BQ)
	ConditionCodes     []string         `json:"condition_codes,omitempty"`      // conditions that may affect payment (from HI BG)
	ValueCodes         []ValueCode      `json:"value_codes,omitempty"`          // from HI BE
	OccurrenceCodes    []string         `json:"occurrence_codes,omitempty"`     // date related occurrences (from HI BH)
	DRG                string           `json:"drg,omitempty"`                  // Diagnosis Related Group for inpatient services (from HI DR)
	Services           []Service        `json:"services,omitempty"`             // one or more services provided to the patient (from LX loop)
}

// RateSheetService is a procedure-level line item on a rate sheet.
type RateSheetService struct {
	ProcedureCode      string   `json:"procedure_code,omitempty"`
	ProcedureModifiers []string `json:"procedure_modifiers,omitempty"`
	BilledAmount       float64  `json:"billed_amount,omitempty"`
	AllowedAmount      float64  `json:"allowed_amount,omitempty"`
}

// RateSheet is a reduced claim shape used for fee-schedule estimation
// without full claim context: no diagnoses, no service dates.
type RateSheet struct {
	NPI               string             `json:"npi,omitempty"`
	ProviderFirstName string             `json:"provider_first_name,omitempty"`
	ProviderLastName  string             `json:"provider_last_name,omitempty"`
	ProviderOrgName   string             `json:"provider_org_name,omitempty"`
	ProviderAddress   string             `json:"provider_address,omitempty"`
	ProviderCity      string             `json:"provider_city,omitempty"`
	ProviderState     string             `json:"provider_state,omitempty"`
	ProviderZIP       string             `json:"provider_zip,omitempty"`
	FormType          FormType           `json:"form_type,omitempty"`
	BillTypeOrPOS     string             `json:"bill_type_or_pos,omitempty"`
	DRG               string             `json:"drg,omitempty"`
	BilledAmount      float64            `json:"billed_amount,omitempty"`
	AllowedAmount     float64            `json:"allowed_amount,omitempty"`
	PaidAmount        float64            `json:"paid_amount,omitempty"`
	Services          []RateSheetService `json:"services,omitempty"`
}
