// README: Pricing handlers for trip analysis and stateless simulation.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/modules/compliance"
	"rotaclick/internal/modules/pricing"
	"rotaclick/internal/types"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

type tripRequest struct {
	DistanceKm          float64 `json:"distancia_km"`
	WaitingHours        float64 `json:"horas_espera"`
	EstimatedTolls      float64 `json:"pedagio_estimado"`
	QuotedPrice         float64 `json:"preco"`
	Model               string  `json:"modelo_precificacao"`
	ValePedagioIncluded bool    `json:"vale_pedagio_incluido"`
	OperationCode       string  `json:"codigo_operacao_antt"`
	AxleCount           *int    `json:"eixos"`
}

func (r tripRequest) toTrip() pricing.TripInput {
	return pricing.TripInput{
		DistanceKm:          r.DistanceKm,
		WaitingHours:        r.WaitingHours,
		EstimatedTolls:      r.EstimatedTolls,
		QuotedPrice:         r.QuotedPrice,
		Model:               pricing.PricingModel(r.Model),
		ValePedagioIncluded: r.ValePedagioIncluded,
		AnttOperationCode:   r.OperationCode,
		AxleCount:           r.AxleCount,
	}
}

type analyzeRequest struct {
	CarrierID string      `json:"carrier_id"`
	Trip      tripRequest `json:"viagem"`
}

// Analyze runs the full pricing analysis for a carrier against its stored
// cost profile, the latest ANTT snapshot and its document records.
func (h *PricingHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.CarrierID == "" {
		writeError(c, http.StatusBadRequest, "missing carrier_id")
		return
	}

	analysis, err := h.pricing.AnalyzeTrip(c.Request.Context(), types.ID(req.CarrierID), req.Trip.toTrip())
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, analysis)
}

type costParamsRequest struct {
	DieselPricePerLiter      float64 `json:"preco_diesel_litro"`
	AvgConsumptionKmPerLiter float64 `json:"consumo_medio_km_l"`
	VariableCostPerKm        float64 `json:"custo_variavel_km"`
	FixedMonthlyCost         float64 `json:"custo_fixo_mensal"`
	EstimatedMonthlyKm       float64 `json:"km_mensal_estimado"`
	WaitingCostPerHour       float64 `json:"custo_espera_hora"`
	AdminFeePercent          float64 `json:"taxa_administrativa_percentual"`
	PickupDeliveryFee        float64 `json:"taxa_coleta_entrega"`
	EmptyReturnFactor        float64 `json:"fator_retorno_vazio"`
	ValePedagioRequired      bool    `json:"vale_pedagio_obrigatorio"`
}

func (r costParamsRequest) toParams() pricing.CarrierCostParameters {
	return pricing.CarrierCostParameters{
		DieselPricePerLiter:      r.DieselPricePerLiter,
		AvgConsumptionKmPerLiter: r.AvgConsumptionKmPerLiter,
		VariableCostPerKm:        r.VariableCostPerKm,
		FixedMonthlyCost:         r.FixedMonthlyCost,
		EstimatedMonthlyKm:       r.EstimatedMonthlyKm,
		WaitingCostPerHour:       r.WaitingCostPerHour,
		AdminFeePercent:          r.AdminFeePercent,
		PickupDeliveryFee:        r.PickupDeliveryFee,
		EmptyReturnFactor:        r.EmptyReturnFactor,
		ValePedagioRequired:      r.ValePedagioRequired,
	}
}

type documentsRequest struct {
	RNTRCStatus            string     `json:"situacao_rntrc"`
	RNTRCExpiresAt         *time.Time `json:"rntrc_valido_ate"`
	ANTTRegistrationStatus string     `json:"situacao_registro_antt"`
	InsuranceValidUntil    *time.Time `json:"seguro_valido_ate"`
}

type simulateRequest struct {
	Trip      tripRequest                   `json:"viagem"`
	Params    costParamsRequest             `json:"parametros_custo"`
	Snapshot  *compliance.ReferenceSnapshot `json:"referencia_antt,omitempty"`
	Documents *documentsRequest             `json:"documentos,omitempty"`
}

// Simulate runs a stateless analysis from inline parameters. Nothing is
// persisted; useful for the quote form's live preview.
func (h *PricingHandler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	// Absent documents simulate a fully regular carrier, keeping the preview
	// focused on price and floor checks.
	docs := compliance.CarrierDocuments{
		RNTRCStatus:            compliance.StatusActive,
		ANTTRegistrationStatus: compliance.StatusActive,
	}
	if req.Documents != nil {
		docs = compliance.CarrierDocuments{
			RNTRCStatus:            req.Documents.RNTRCStatus,
			RNTRCExpiresAt:         req.Documents.RNTRCExpiresAt,
			ANTTRegistrationStatus: req.Documents.ANTTRegistrationStatus,
			InsuranceValidUntil:    req.Documents.InsuranceValidUntil,
		}
	}

	analysis, err := pricing.Analyze(req.Trip.toTrip(), req.Params.toParams(), req.Snapshot, docs, time.Now())
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, analysis)
}
