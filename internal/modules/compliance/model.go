// README: ANTT reference snapshot, carrier documents and compliance alerts.
package compliance

import "time"

// DefaultOperationKey selects the fallback multiplier when the trip carries no
// ANTT operation code, or an unknown one.
const DefaultOperationKey = "default"

// FloorFormula holds the parameters of the ANTT minimum freight price formula
// (piso mínimo de frete) as published in the reference snapshot.
type FloorFormula struct {
	BaseCostPerKm        float64            `json:"custo_base_km"`
	CostPerAxleKm        float64            `json:"custo_eixo_km"`
	DieselCoefficient    float64            `json:"coeficiente_diesel"`
	OperationMultipliers map[string]float64 `json:"multiplicadores_operacao"`
}

// Multiplier returns the per-operation multiplier for the given code, falling
// back to the "default" entry and finally to 1.
func (f FloorFormula) Multiplier(operationCode string) float64 {
	if m, ok := f.OperationMultipliers[operationCode]; ok && operationCode != "" {
		return m
	}
	if m, ok := f.OperationMultipliers[DefaultOperationKey]; ok {
		return m
	}
	return 1
}

// ReferenceSnapshot is one versioned ANTT regulatory data point. Snapshots are
// produced by the ingestion pipeline; compliance checks always consume exactly
// one, supplied by the caller.
type ReferenceSnapshot struct {
	SourceURL            string        `json:"fonte_url"`
	Version              string        `json:"versao"`
	EffectiveFrom        *time.Time    `json:"vigencia_inicio,omitempty"`
	EffectiveTo          *time.Time    `json:"vigencia_fim,omitempty"`
	DieselReferencePrice *float64      `json:"preco_diesel_referencia,omitempty"`
	FloorFormula         *FloorFormula `json:"formula_piso"`
}

// Document status values as recorded on carrier records.
const (
	StatusActive = "ativo"
)

// CarrierDocuments holds the regulatory document status of a carrier,
// read-only input sourced from carrier records.
type CarrierDocuments struct {
	RNTRCStatus            string
	RNTRCExpiresAt         *time.Time
	ANTTRegistrationStatus string
	InsuranceValidUntil    *time.Time // nil means never recorded ("unknown")
}

// Alert codes, stable across releases. All of these are blocking.
const (
	CodeFloorViolation       = "ANTT_FLOOR_VIOLATION"
	CodeValePedagioRequired  = "VALE_PEDAGIO_REQUIRED"
	CodeRNTRCInvalid         = "RNTRC_INVALID"
	CodeRegistrationInactive = "ANTT_REGISTRATION_INACTIVE"
	CodeInsuranceExpired     = "INSURANCE_EXPIRED"
)

var blockingCodes = map[string]bool{
	CodeFloorViolation:       true,
	CodeValePedagioRequired:  true,
	CodeRNTRCInvalid:         true,
	CodeRegistrationInactive: true,
	CodeInsuranceExpired:     true,
}

// Alert is one coded compliance condition with a human-readable message.
type Alert struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

// Result aggregates the alerts of one validation pass. Alert order is the
// check-evaluation order and is stable for a given input.
type Result struct {
	HasBlockingErrors bool    `json:"has_blocking_errors"`
	Alerts            []Alert `json:"alerts"`
}

func (r *Result) append(code, message string) {
	blocking := blockingCodes[code]
	r.Alerts = append(r.Alerts, Alert{Code: code, Message: message, Blocking: blocking})
	if blocking {
		r.HasBlockingErrors = true
	}
}
