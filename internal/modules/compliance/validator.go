// README: ANTT compliance validator; business failures are alerts, not errors.
package compliance

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingFloorFormula is returned when a snapshot is supplied without its
// floor-formula parameter set. That is a caller-contract violation, unlike the
// business conditions below which are reported as alerts.
var ErrMissingFloorFormula = errors.New("reference snapshot has no floor formula parameters")

// ValidateInput gathers everything one compliance pass reads. Now is explicit
// so two calls with identical inputs produce identical results.
type ValidateInput struct {
	DistanceKm          float64
	AnalyzedPrice       float64
	OperationCode       string
	AxleCount           int
	ValePedagioRequired bool
	ValePedagioIncluded bool
	CarrierDieselPrice  float64
	Reference           *ReferenceSnapshot // nil skips the floor-price check
	Carrier             CarrierDocuments
	Now                 time.Time
}

// Validate runs every compliance check independently and in a fixed order:
// floor price, vale-pedágio, RNTRC, ANTT registration, insurance. A single
// call may produce several alerts; none of them short-circuits the rest.
func Validate(in ValidateInput) (Result, error) {
	var res Result

	if in.Reference != nil {
		if in.Reference.FloorFormula == nil {
			return Result{}, ErrMissingFloorFormula
		}
		floor := FloorPrice(*in.Reference.FloorFormula, in.DistanceKm, in.AxleCount,
			in.OperationCode, in.Reference.DieselReferencePrice, in.CarrierDieselPrice)
		if in.AnalyzedPrice < floor {
			res.append(CodeFloorViolation, fmt.Sprintf(
				"Preço analisado R$ %.2f está abaixo do piso mínimo ANTT de R$ %.2f",
				in.AnalyzedPrice, floor))
		}
	}

	if in.ValePedagioRequired && !in.ValePedagioIncluded {
		res.append(CodeValePedagioRequired,
			"Vale-pedágio é obrigatório por lei para esta operação e não foi incluído no preço cotado")
	}

	if in.Carrier.RNTRCStatus != StatusActive {
		res.append(CodeRNTRCInvalid, fmt.Sprintf(
			"RNTRC com situação %q impede a operação legal do transportador", in.Carrier.RNTRCStatus))
	} else if in.Carrier.RNTRCExpiresAt != nil && in.Carrier.RNTRCExpiresAt.Before(in.Now) {
		res.append(CodeRNTRCInvalid, fmt.Sprintf(
			"RNTRC vencido em %s impede a operação legal do transportador",
			in.Carrier.RNTRCExpiresAt.Format("02/01/2006")))
	}

	if in.Carrier.ANTTRegistrationStatus != StatusActive {
		res.append(CodeRegistrationInactive, fmt.Sprintf(
			"Registro ANTT com situação %q; operação não autorizada", in.Carrier.ANTTRegistrationStatus))
	}

	// A nil validity date means the insurance record was never filled in;
	// treated as unknown, not as expired. Product decision pending.
	if in.Carrier.InsuranceValidUntil != nil && in.Carrier.InsuranceValidUntil.Before(in.Now) {
		res.append(CodeInsuranceExpired, fmt.Sprintf(
			"Seguro RCTR-C vencido em %s", in.Carrier.InsuranceValidUntil.Format("02/01/2006")))
	}

	return res, nil
}
