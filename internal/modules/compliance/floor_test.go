// README: Floor-price formula tests.
package compliance

import (
	"math"
	"testing"
)

func referenceFormula() FloorFormula {
	return FloorFormula{
		BaseCostPerKm:     1.4,
		CostPerAxleKm:     0.22,
		DieselCoefficient: 0.08,
		OperationMultipliers: map[string]float64{
			DefaultOperationKey: 1.0,
			"carga_geral":       1.05,
			"perigosa":          1.2,
		},
	}
}

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestFloorPrice_BaseFormula(t *testing.T) {
	// (1.4 + 0.22*3) * 500 = 1030
	got := FloorPrice(referenceFormula(), 500, 3, "", nil, 0)

	nearlyEqual(t, "floor", got, 1030.00)
}

func TestFloorPrice_OperationMultiplier(t *testing.T) {
	got := FloorPrice(referenceFormula(), 500, 3, "perigosa", nil, 0)

	nearlyEqual(t, "floor", got, 1236.00)
}

func TestFloorPrice_UnknownOperationFallsBackToDefault(t *testing.T) {
	got := FloorPrice(referenceFormula(), 500, 3, "inexistente", nil, 0)

	nearlyEqual(t, "floor", got, 1030.00)
}

func TestFloorPrice_NoDefaultEntryMeansUnitMultiplier(t *testing.T) {
	formula := referenceFormula()
	formula.OperationMultipliers = map[string]float64{"perigosa": 1.2}

	got := FloorPrice(formula, 500, 3, "", nil, 0)

	nearlyEqual(t, "floor", got, 1030.00)
}

// TestFloorPrice_DieselAdjustment checks the relative sensitivity term: a
// carrier paying 10% over the reference diesel price raises the floor by
// coefficient * 10%.
func TestFloorPrice_DieselAdjustment(t *testing.T) {
	ref := 6.0

	// 1030 * (1 + 0.08 * (6.6-6.0)/6.0) = 1030 * 1.008
	got := FloorPrice(referenceFormula(), 500, 3, "", &ref, 6.6)
	nearlyEqual(t, "floor above reference", got, 1038.24)

	// Paying exactly the reference price leaves the floor untouched.
	got = FloorPrice(referenceFormula(), 500, 3, "", &ref, 6.0)
	nearlyEqual(t, "floor at reference", got, 1030.00)

	// Cheaper diesel lowers the floor.
	got = FloorPrice(referenceFormula(), 500, 3, "", &ref, 5.4)
	nearlyEqual(t, "floor below reference", got, 1021.76)
}

func TestFloorPrice_MissingDieselDataSkipsAdjustment(t *testing.T) {
	got := FloorPrice(referenceFormula(), 500, 3, "", nil, 6.6)

	nearlyEqual(t, "floor", got, 1030.00)
}
