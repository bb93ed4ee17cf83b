// README: Carrier cost-profile handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/modules/pricing"
	"rotaclick/internal/types"
)

type CarrierHandler struct {
	pricing *pricing.Service
}

func NewCarrierHandler(svc *pricing.Service) *CarrierHandler {
	return &CarrierHandler{pricing: svc}
}

// GetCostParameters returns the stored cost profile of one carrier.
func (h *CarrierHandler) GetCostParameters(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing carrier id")
		return
	}
	params, err := h.pricing.CostParameters(c.Request.Context(), types.ID(id))
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, params)
}

// PutCostParameters validates and stores the cost profile of one carrier.
func (h *CarrierHandler) PutCostParameters(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing carrier id")
		return
	}
	var req costParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.pricing.SaveCostParameters(c.Request.Context(), types.ID(id), req.toParams()); err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
