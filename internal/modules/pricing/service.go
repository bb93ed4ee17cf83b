// README: Pricing service orchestrates estimate, profit, suggestions and the
// compliance verdict for one trip.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rotaclick/internal/modules/compliance"
	"rotaclick/internal/types"
)

var (
	ErrNotFound          = errors.New("carrier cost parameters not found")
	ErrInvalidTrip       = errors.New("invalid trip input")
	ErrInvalidCostParams = errors.New("invalid carrier cost parameters")
)

// Analysis is the full outcome of one pricing request: what the trip costs,
// what the quoted price earns, what to do about it, and whether the quote may
// legally be published.
type Analysis struct {
	Breakdown   CostBreakdown     `json:"custos"`
	Profit      ProfitResult      `json:"resultado"`
	MarginLevel MarginLevel       `json:"classificacao_margem"`
	FloorPrice  *float64          `json:"piso_antt,omitempty"`
	Suggestions []string          `json:"sugestoes"`
	Compliance  compliance.Result `json:"conformidade"`
}

// Analyze composes the five pure components. snapshot may be nil (no reference
// available; floor checks are skipped). now feeds document-expiry checks only.
//
// Errors are reserved for contract violations; every business outcome — a
// negative margin, a price under the regulatory floor, an expired document —
// comes back inside the Analysis.
func Analyze(trip TripInput, params CarrierCostParameters, snapshot *compliance.ReferenceSnapshot, docs compliance.CarrierDocuments, now time.Time) (Analysis, error) {
	if err := validateTrip(trip); err != nil {
		return Analysis{}, err
	}
	if err := validateParams(params); err != nil {
		return Analysis{}, err
	}

	breakdown := EstimateTotalCost(trip, params)
	profit := CalculateProfit(trip.QuotedPrice, breakdown.TotalCost)

	var floor *float64
	if snapshot != nil {
		if snapshot.FloorFormula == nil {
			return Analysis{}, compliance.ErrMissingFloorFormula
		}
		f := compliance.FloorPrice(*snapshot.FloorFormula, trip.DistanceKm, trip.Axles(),
			trip.AnttOperationCode, snapshot.DieselReferencePrice, params.DieselPricePerLiter)
		floor = &f
	}

	verdict, err := compliance.Validate(compliance.ValidateInput{
		DistanceKm:          trip.DistanceKm,
		AnalyzedPrice:       trip.QuotedPrice,
		OperationCode:       trip.AnttOperationCode,
		AxleCount:           trip.Axles(),
		ValePedagioRequired: params.ValePedagioRequired,
		ValePedagioIncluded: trip.ValePedagioIncluded,
		CarrierDieselPrice:  params.DieselPricePerLiter,
		Reference:           snapshot,
		Carrier:             docs,
		Now:                 now,
	})
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Breakdown:   breakdown,
		Profit:      profit,
		MarginLevel: ClassifyMargin(profit.MarginPercent),
		FloorPrice:  floor,
		Suggestions: BuildSuggestions(SuggestionInput{
			MarginPercent: profit.MarginPercent,
			TotalCost:     breakdown.TotalCost,
			CurrentPrice:  trip.QuotedPrice,
			AnttFloor:     floor,
		}),
		Compliance: verdict,
	}, nil
}

func validateTrip(trip TripInput) error {
	if trip.DistanceKm <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrInvalidTrip)
	}
	if trip.QuotedPrice <= 0 {
		return fmt.Errorf("%w: quoted price must be positive", ErrInvalidTrip)
	}
	if trip.WaitingHours < 0 || trip.EstimatedTolls < 0 {
		return fmt.Errorf("%w: waiting hours and tolls must be non-negative", ErrInvalidTrip)
	}
	return nil
}

func validateParams(p CarrierCostParameters) error {
	if p.AvgConsumptionKmPerLiter <= 0 {
		return fmt.Errorf("%w: average consumption must be positive", ErrInvalidCostParams)
	}
	if p.EstimatedMonthlyKm <= 0 {
		return fmt.Errorf("%w: estimated monthly km must be positive", ErrInvalidCostParams)
	}
	if p.DieselPricePerLiter < 0 || p.VariableCostPerKm < 0 || p.FixedMonthlyCost < 0 ||
		p.WaitingCostPerHour < 0 || p.AdminFeePercent < 0 || p.PickupDeliveryFee < 0 ||
		p.EmptyReturnFactor < 0 {
		return fmt.Errorf("%w: negative cost component", ErrInvalidCostParams)
	}
	return nil
}

// SnapshotSource yields the latest valid ANTT reference snapshot.
type SnapshotSource interface {
	Latest(ctx context.Context) (*compliance.ReferenceSnapshot, error)
}

// DocumentsSource yields a carrier's regulatory document status.
type DocumentsSource interface {
	CarrierDocuments(ctx context.Context, carrierID types.ID) (compliance.CarrierDocuments, error)
}

type Service struct {
	store     *Store
	snapshots SnapshotSource
	documents DocumentsSource
}

func NewService(store *Store, snapshots SnapshotSource, documents DocumentsSource) *Service {
	return &Service{store: store, snapshots: snapshots, documents: documents}
}

// AnalyzeTrip loads the carrier's cost profile, the latest reference snapshot
// and the carrier's documents, then runs the full analysis. A failed snapshot
// lookup degrades to an analysis without floor checks; a missing cost profile
// or document record is an error.
func (s *Service) AnalyzeTrip(ctx context.Context, carrierID types.ID, trip TripInput) (Analysis, error) {
	params, err := s.store.GetCostParameters(ctx, carrierID)
	if err != nil {
		return Analysis{}, err
	}

	snapshot, err := s.snapshots.Latest(ctx)
	if err != nil {
		log.Printf("pricing: latest ANTT snapshot unavailable, floor check skipped: %v", err)
		snapshot = nil
	}

	docs, err := s.documents.CarrierDocuments(ctx, carrierID)
	if err != nil {
		return Analysis{}, err
	}

	analysis, err := Analyze(trip, params, snapshot, docs, time.Now())
	if err != nil {
		return Analysis{}, err
	}

	// Audit trail only; the analysis is still valid if the insert fails.
	_ = s.store.InsertAnalysis(ctx, carrierID, trip, analysis)

	return analysis, nil
}

// CostParameters exposes the stored profile for the carrier settings screen.
func (s *Service) CostParameters(ctx context.Context, carrierID types.ID) (CarrierCostParameters, error) {
	return s.store.GetCostParameters(ctx, carrierID)
}

// SaveCostParameters validates and upserts a carrier's cost profile.
func (s *Service) SaveCostParameters(ctx context.Context, carrierID types.ID, params CarrierCostParameters) error {
	if err := validateParams(params); err != nil {
		return err
	}
	return s.store.UpsertCostParameters(ctx, carrierID, params)
}
