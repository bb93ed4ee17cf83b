// README: Pricing store backed by PostgreSQL.
package pricing

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rotaclick/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetCostParameters loads the cost profile of one carrier.
func (s *Store) GetCostParameters(ctx context.Context, carrierID types.ID) (CarrierCostParameters, error) {
	row := s.db.QueryRow(ctx, `
		SELECT diesel_price_per_liter, avg_consumption_km_l, variable_cost_per_km,
		       fixed_monthly_cost, estimated_monthly_km, waiting_cost_per_hour,
		       admin_fee_percent, pickup_delivery_fee, empty_return_factor,
		       vale_pedagio_required
		FROM carrier_cost_parameters
		WHERE carrier_id = $1`, string(carrierID),
	)

	var p CarrierCostParameters
	err := row.Scan(
		&p.DieselPricePerLiter, &p.AvgConsumptionKmPerLiter, &p.VariableCostPerKm,
		&p.FixedMonthlyCost, &p.EstimatedMonthlyKm, &p.WaitingCostPerHour,
		&p.AdminFeePercent, &p.PickupDeliveryFee, &p.EmptyReturnFactor,
		&p.ValePedagioRequired,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return CarrierCostParameters{}, ErrNotFound
	}
	if err != nil {
		return CarrierCostParameters{}, err
	}
	return p, nil
}

// UpsertCostParameters writes the full cost profile of one carrier.
func (s *Store) UpsertCostParameters(ctx context.Context, carrierID types.ID, p CarrierCostParameters) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO carrier_cost_parameters (
			carrier_id, diesel_price_per_liter, avg_consumption_km_l, variable_cost_per_km,
			fixed_monthly_cost, estimated_monthly_km, waiting_cost_per_hour,
			admin_fee_percent, pickup_delivery_fee, empty_return_factor,
			vale_pedagio_required, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (carrier_id) DO UPDATE SET
			diesel_price_per_liter = EXCLUDED.diesel_price_per_liter,
			avg_consumption_km_l   = EXCLUDED.avg_consumption_km_l,
			variable_cost_per_km   = EXCLUDED.variable_cost_per_km,
			fixed_monthly_cost     = EXCLUDED.fixed_monthly_cost,
			estimated_monthly_km   = EXCLUDED.estimated_monthly_km,
			waiting_cost_per_hour  = EXCLUDED.waiting_cost_per_hour,
			admin_fee_percent      = EXCLUDED.admin_fee_percent,
			pickup_delivery_fee    = EXCLUDED.pickup_delivery_fee,
			empty_return_factor    = EXCLUDED.empty_return_factor,
			vale_pedagio_required  = EXCLUDED.vale_pedagio_required,
			updated_at             = NOW()`,
		string(carrierID),
		p.DieselPricePerLiter, p.AvgConsumptionKmPerLiter, p.VariableCostPerKm,
		p.FixedMonthlyCost, p.EstimatedMonthlyKm, p.WaitingCostPerHour,
		p.AdminFeePercent, p.PickupDeliveryFee, p.EmptyReturnFactor,
		p.ValePedagioRequired,
	)
	return err
}

// InsertAnalysis appends one analysis to the audit trail. Best-effort: callers
// may ignore the error.
func (s *Store) InsertAnalysis(ctx context.Context, carrierID types.ID, trip TripInput, a Analysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO pricing_analyses (
			carrier_id, distance_km, quoted_price, pricing_model,
			total_cost, margin_percent, margin_level, has_blocking_errors,
			result, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`,
		string(carrierID), trip.DistanceKm, trip.QuotedPrice, string(trip.Model),
		a.Breakdown.TotalCost, a.Profit.MarginPercent, string(a.MarginLevel),
		a.Compliance.HasBlockingErrors, payload,
	)
	return err
}
