// README: Compliance validator tests (check set, ordering, blocking flag).
package compliance

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func regularCarrier() CarrierDocuments {
	future := testNow.AddDate(1, 0, 0)
	return CarrierDocuments{
		RNTRCStatus:            StatusActive,
		RNTRCExpiresAt:         &future,
		ANTTRegistrationStatus: StatusActive,
		InsuranceValidUntil:    &future,
	}
}

func referenceSnapshot(formula FloorFormula) *ReferenceSnapshot {
	return &ReferenceSnapshot{
		SourceURL:    "https://dados.antt.gov.br/piso",
		Version:      "res-5867/2026",
		FloorFormula: &formula,
	}
}

func hasAlert(res Result, code string) bool {
	for _, a := range res.Alerts {
		if a.Code == code {
			return true
		}
	}
	return false
}

func TestValidate_FloorViolation(t *testing.T) {
	res, err := Validate(ValidateInput{
		DistanceKm:          500,
		AnalyzedPrice:       200,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Reference:           referenceSnapshot(referenceFormula()),
		Carrier:             regularCarrier(),
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if !res.HasBlockingErrors {
		t.Fatal("expected blocking errors")
	}
	if !hasAlert(res, CodeFloorViolation) {
		t.Fatalf("expected %s alert, got %+v", CodeFloorViolation, res.Alerts)
	}
	want := "Preço analisado R$ 200.00 está abaixo do piso mínimo ANTT de R$ 1030.00"
	if res.Alerts[0].Message != want {
		t.Fatalf("message = %q, want %q", res.Alerts[0].Message, want)
	}
}

// TestValidate_TinyBaseCostDoesNotTriggerFloor uses a formula whose floor sits
// well below the analyzed price: only the missing toll voucher fires.
func TestValidate_TinyBaseCostDoesNotTriggerFloor(t *testing.T) {
	formula := referenceFormula()
	formula.BaseCostPerKm = 0.2

	res, err := Validate(ValidateInput{
		DistanceKm:          500,
		AnalyzedPrice:       350, // floor = (0.2 + 0.22*2) * 500 = 320
		AxleCount:           2,
		ValePedagioRequired: true,
		ValePedagioIncluded: false,
		Reference:           referenceSnapshot(formula),
		Carrier:             regularCarrier(),
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if hasAlert(res, CodeFloorViolation) {
		t.Fatalf("floor violation should not fire, got %+v", res.Alerts)
	}
	if !hasAlert(res, CodeValePedagioRequired) {
		t.Fatalf("expected %s alert, got %+v", CodeValePedagioRequired, res.Alerts)
	}
	if !res.HasBlockingErrors {
		t.Fatal("missing toll voucher must block")
	}
}

func TestValidate_ValePedagioIndependentOfFloor(t *testing.T) {
	// Price far below the floor AND missing voucher: both alerts, in check order.
	res, err := Validate(ValidateInput{
		DistanceKm:          500,
		AnalyzedPrice:       200,
		AxleCount:           3,
		ValePedagioRequired: true,
		ValePedagioIncluded: false,
		Reference:           referenceSnapshot(referenceFormula()),
		Carrier:             regularCarrier(),
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if len(res.Alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %+v", res.Alerts)
	}
	if res.Alerts[0].Code != CodeFloorViolation || res.Alerts[1].Code != CodeValePedagioRequired {
		t.Fatalf("unexpected alert order: %+v", res.Alerts)
	}
}

func TestValidate_NoReferenceSkipsFloorCheck(t *testing.T) {
	res, err := Validate(ValidateInput{
		DistanceKm:          500,
		AnalyzedPrice:       1,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Reference:           nil,
		Carrier:             regularCarrier(),
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(res.Alerts) != 0 {
		t.Fatalf("expected no alerts without a reference snapshot, got %+v", res.Alerts)
	}
}

func TestValidate_MissingFloorFormulaIsContractViolation(t *testing.T) {
	_, err := Validate(ValidateInput{
		DistanceKm:    500,
		AnalyzedPrice: 2000,
		AxleCount:     3,
		Reference:     &ReferenceSnapshot{Version: "broken"},
		Carrier:       regularCarrier(),
		Now:           testNow,
	})
	if !errors.Is(err, ErrMissingFloorFormula) {
		t.Fatalf("expected ErrMissingFloorFormula, got %v", err)
	}
}

func TestValidate_RNTRCInactive(t *testing.T) {
	carrier := regularCarrier()
	carrier.RNTRCStatus = "suspenso"

	res, err := Validate(ValidateInput{
		DistanceKm:          100,
		AnalyzedPrice:       5000,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Carrier:             carrier,
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if !hasAlert(res, CodeRNTRCInvalid) || !res.HasBlockingErrors {
		t.Fatalf("expected blocking %s alert, got %+v", CodeRNTRCInvalid, res.Alerts)
	}
}

func TestValidate_RNTRCExpired(t *testing.T) {
	carrier := regularCarrier()
	past := testNow.AddDate(0, -1, 0)
	carrier.RNTRCExpiresAt = &past

	res, err := Validate(ValidateInput{
		DistanceKm:          100,
		AnalyzedPrice:       5000,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Carrier:             carrier,
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if !hasAlert(res, CodeRNTRCInvalid) {
		t.Fatalf("expected %s alert for expired registry, got %+v", CodeRNTRCInvalid, res.Alerts)
	}
}

func TestValidate_RegistrationInactive(t *testing.T) {
	carrier := regularCarrier()
	carrier.ANTTRegistrationStatus = "cancelado"

	res, err := Validate(ValidateInput{
		DistanceKm:          100,
		AnalyzedPrice:       5000,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Carrier:             carrier,
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if !hasAlert(res, CodeRegistrationInactive) || !res.HasBlockingErrors {
		t.Fatalf("expected blocking %s alert, got %+v", CodeRegistrationInactive, res.Alerts)
	}
}

func TestValidate_InsuranceExpired(t *testing.T) {
	carrier := regularCarrier()
	past := testNow.AddDate(0, 0, -1)
	carrier.InsuranceValidUntil = &past

	res, err := Validate(ValidateInput{
		DistanceKm:          100,
		AnalyzedPrice:       5000,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Carrier:             carrier,
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if !hasAlert(res, CodeInsuranceExpired) || !res.HasBlockingErrors {
		t.Fatalf("expected blocking %s alert, got %+v", CodeInsuranceExpired, res.Alerts)
	}
}

// TestValidate_AbsentInsuranceIsUnknown: a carrier that never recorded an
// insurance date is not blocked. Current product policy; may change.
func TestValidate_AbsentInsuranceIsUnknown(t *testing.T) {
	carrier := regularCarrier()
	carrier.InsuranceValidUntil = nil

	res, err := Validate(ValidateInput{
		DistanceKm:          100,
		AnalyzedPrice:       5000,
		AxleCount:           3,
		ValePedagioIncluded: true,
		Carrier:             carrier,
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if hasAlert(res, CodeInsuranceExpired) {
		t.Fatalf("absent insurance date must not block, got %+v", res.Alerts)
	}
}

func TestValidate_AllChecksAccumulate(t *testing.T) {
	past := testNow.AddDate(0, -2, 0)
	carrier := CarrierDocuments{
		RNTRCStatus:            "vencido",
		ANTTRegistrationStatus: "suspenso",
		InsuranceValidUntil:    &past,
	}

	res, err := Validate(ValidateInput{
		DistanceKm:          500,
		AnalyzedPrice:       200,
		AxleCount:           3,
		ValePedagioRequired: true,
		ValePedagioIncluded: false,
		Reference:           referenceSnapshot(referenceFormula()),
		Carrier:             carrier,
		Now:                 testNow,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	wantOrder := []string{
		CodeFloorViolation,
		CodeValePedagioRequired,
		CodeRNTRCInvalid,
		CodeRegistrationInactive,
		CodeInsuranceExpired,
	}
	if len(res.Alerts) != len(wantOrder) {
		t.Fatalf("expected %d alerts, got %+v", len(wantOrder), res.Alerts)
	}
	for i, code := range wantOrder {
		if res.Alerts[i].Code != code {
			t.Errorf("alert[%d] = %s, want %s", i, res.Alerts[i].Code, code)
		}
		if !res.Alerts[i].Blocking {
			t.Errorf("alert %s must be blocking", code)
		}
	}
}
