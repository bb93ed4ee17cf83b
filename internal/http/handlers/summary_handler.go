// README: AI quote-summary handler, gated by the monthly carrier quota.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/ai"
	"rotaclick/internal/modules/pricing"
	"rotaclick/internal/types"
)

// TripAnalyzer runs the full pricing analysis for a stored carrier.
type TripAnalyzer interface {
	AnalyzeTrip(ctx context.Context, carrierID types.ID, trip pricing.TripInput) (pricing.Analysis, error)
}

// SummaryQuota meters the AI summary allowance per carrier.
type SummaryQuota interface {
	Consume(ctx context.Context, carrierID types.ID) error
	Refund(ctx context.Context, carrierID types.ID) error
}

type SummaryHandler struct {
	pricing  TripAnalyzer
	quota    SummaryQuota
	provider ai.SummaryProvider
}

// NewSummaryHandler accepts a nil provider when no Gemini key is configured;
// the endpoint then reports 503.
func NewSummaryHandler(svc TripAnalyzer, quota SummaryQuota, provider ai.SummaryProvider) *SummaryHandler {
	return &SummaryHandler{pricing: svc, quota: quota, provider: provider}
}

type summaryRequest struct {
	CarrierID   string      `json:"carrier_id"`
	Trip        tripRequest `json:"viagem"`
	Origin      string      `json:"origem"`
	Destination string      `json:"destino"`
	CargoNote   string      `json:"observacoes"`
}

// Summarize analyzes the trip and asks the AI provider for a customer-facing
// narrative. One unit of the carrier's monthly quota is consumed per delivered
// summary; a failed analysis or generation refunds the unit.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	if h.provider == nil {
		writeError(c, http.StatusServiceUnavailable, "AI summaries not configured")
		return
	}

	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.CarrierID == "" {
		writeError(c, http.StatusBadRequest, "missing carrier_id")
		return
	}
	carrierID := types.ID(req.CarrierID)

	if err := h.quota.Consume(c.Request.Context(), carrierID); err != nil {
		writePricingError(c, err)
		return
	}

	analysis, err := h.pricing.AnalyzeTrip(c.Request.Context(), carrierID, req.Trip.toTrip())
	if err != nil {
		_ = h.quota.Refund(c.Request.Context(), carrierID)
		writePricingError(c, err)
		return
	}

	summary, err := h.provider.SummarizeAnalysis(c.Request.Context(), ai.SummaryRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		CargoNote:   req.CargoNote,
	}, analysis)
	if err != nil {
		_ = h.quota.Refund(c.Request.Context(), carrierID)
		writeError(c, http.StatusBadGateway, "summary generation failed")
		return
	}
	writeJSON(c, http.StatusOK, summary)
}
