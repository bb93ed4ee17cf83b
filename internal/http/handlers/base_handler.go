// README: Handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/modules/aiquota"
	"rotaclick/internal/modules/antt"
	"rotaclick/internal/modules/compliance"
	"rotaclick/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrNotFound), errors.Is(err, compliance.ErrCarrierNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, pricing.ErrInvalidTrip), errors.Is(err, pricing.ErrInvalidCostParams):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, antt.ErrNoSnapshot):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, aiquota.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
