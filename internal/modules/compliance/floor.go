// README: ANTT minimum freight price ("piso mínimo") computation.
package compliance

import "rotaclick/internal/types"

// FloorPrice computes the regulatory minimum price for a trip:
//
//	(base_per_km + per_axle_km × axles) × km × operation_multiplier
//
// optionally scaled by a diesel-price sensitivity term when both the
// reference diesel price and the carrier's diesel price are known:
//
//	× (1 + coefficient × (carrier_diesel − reference_diesel) / reference_diesel)
//
// The adjustment is relative, so a carrier paying exactly the reference price
// leaves the floor untouched.
func FloorPrice(formula FloorFormula, distanceKm float64, axleCount int, operationCode string, dieselReference *float64, carrierDiesel float64) float64 {
	floor := (formula.BaseCostPerKm + formula.CostPerAxleKm*float64(axleCount)) * distanceKm
	floor *= formula.Multiplier(operationCode)

	if dieselReference != nil && *dieselReference > 0 && carrierDiesel > 0 {
		floor *= 1 + formula.DieselCoefficient*(carrierDiesel-*dieselReference) / *dieselReference
	}

	return types.Round2(floor)
}
