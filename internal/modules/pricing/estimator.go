// README: Cost estimator converts trip facts and a cost profile into an
// itemized breakdown.
package pricing

import "rotaclick/internal/types"

// EstimateTotalCost computes the itemized cost of running a trip under the
// given cost profile. Pure function; inputs are assumed pre-validated by the
// caller (positive distance and price, non-zero consumption and monthly km).
//
// Each component is rounded to 2 decimals before the total is summed.
func EstimateTotalCost(trip TripInput, params CarrierCostParameters) CostBreakdown {
	fuelPerKm := params.DieselPricePerLiter / params.AvgConsumptionKmPerLiter

	fuel := types.Round2(trip.DistanceKm / params.AvgConsumptionKmPerLiter * params.DieselPricePerLiter)
	variable := types.Round2(trip.DistanceKm * params.VariableCostPerKm)
	fixedAlloc := types.Round2(params.FixedMonthlyCost / params.EstimatedMonthlyKm * trip.DistanceKm)
	tolls := types.Round2(trip.EstimatedTolls)
	timeCost := types.Round2(trip.WaitingHours * params.WaitingCostPerHour)
	fees := types.Round2(trip.QuotedPrice*params.AdminFeePercent/100 + params.PickupDeliveryFee)
	emptyReturn := types.Round2(trip.DistanceKm * params.EmptyReturnFactor * (fuelPerKm + params.VariableCostPerKm))

	return CostBreakdown{
		Fuel:            fuel,
		Variable:        variable,
		FixedAllocation: fixedAlloc,
		Tolls:           tolls,
		TimeCost:        timeCost,
		Fees:            fees,
		EmptyReturn:     emptyReturn,
		TotalCost:       types.Round2(fuel + variable + fixedAlloc + tolls + timeCost + fees + emptyReturn),
	}
}
