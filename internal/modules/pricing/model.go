// README: Trip input, carrier cost profile and pricing result definitions.
package pricing

// PricingModel tags how a freight was quoted. Informational only: it does not
// change the cost formula.
type PricingModel string

const (
	ModelPerKm         PricingModel = "por_km"
	ModelFixedRoute    PricingModel = "rota_fixa"
	ModelPostalRange   PricingModel = "faixa_cep"
	ModelWeightBracket PricingModel = "faixa_peso"
	ModelVolumeBracket PricingModel = "faixa_volume"
)

// DefaultAxleCount is assumed when the trip carries no axle override.
const DefaultAxleCount = 3

// TripInput holds the facts of a single pricing request. It is immutable once
// submitted and never persisted by this package on its own.
type TripInput struct {
	DistanceKm          float64
	WaitingHours        float64 // defaults to 0 when absent
	EstimatedTolls      float64 // defaults to 0 when absent
	QuotedPrice         float64
	Model               PricingModel
	ValePedagioIncluded bool
	AnttOperationCode   string // optional; "" selects the default multiplier
	AxleCount           *int   // optional override, DefaultAxleCount otherwise
}

// Axles resolves the effective axle count for the trip.
func (t TripInput) Axles() int {
	if t.AxleCount != nil && *t.AxleCount > 0 {
		return *t.AxleCount
	}
	return DefaultAxleCount
}

// CarrierCostParameters is a carrier's cost profile. Owned and persisted by the
// carrier-configuration side of the application; read-only here.
type CarrierCostParameters struct {
	DieselPricePerLiter      float64
	AvgConsumptionKmPerLiter float64
	VariableCostPerKm        float64
	FixedMonthlyCost         float64
	EstimatedMonthlyKm       float64
	WaitingCostPerHour       float64
	AdminFeePercent          float64
	PickupDeliveryFee        float64
	EmptyReturnFactor        float64 // fraction of the trip assumed run empty on return
	ValePedagioRequired      bool
}

// CostBreakdown itemizes the estimated cost of a trip. Every component is
// rounded to 2 decimals before TotalCost is summed, so the total is always
// reproducible by adding the seven fields.
type CostBreakdown struct {
	Fuel            float64 `json:"combustivel"`
	Variable        float64 `json:"custo_variavel"`
	FixedAllocation float64 `json:"rateio_custo_fixo"`
	Tolls           float64 `json:"pedagios"`
	TimeCost        float64 `json:"custo_espera"`
	Fees            float64 `json:"taxas"`
	EmptyReturn     float64 `json:"retorno_vazio"`
	TotalCost       float64 `json:"custo_total"`
}

// ProfitResult carries profit and margin derived from price and total cost.
// MarginPercent is exactly -100 when the price is zero or negative.
type ProfitResult struct {
	ProfitValue   float64 `json:"lucro"`
	MarginPercent float64 `json:"margem_percentual"`
}

// MarginLevel is the qualitative tier of a margin percentage.
type MarginLevel string

const (
	MarginLoss     MarginLevel = "loss"     // margin < 0
	MarginCritical MarginLevel = "critical" // 0 <= margin < 8
	MarginOK       MarginLevel = "ok"       // 8 <= margin <= 15
	MarginGreat    MarginLevel = "great"    // margin > 15
)
