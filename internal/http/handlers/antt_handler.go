// README: ANTT snapshot and ingestion-log handlers (platform admin only for
// manual runs).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/http/middleware"
	"rotaclick/internal/modules/antt"
)

type AnttHandler struct {
	antt *antt.Service
}

func NewAnttHandler(svc *antt.Service) *AnttHandler {
	return &AnttHandler{antt: svc}
}

// LatestSnapshot returns the reference snapshot compliance checks currently use.
func (h *AnttHandler) LatestSnapshot(c *gin.Context) {
	snap, err := h.antt.Latest(c.Request.Context())
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, snap)
}

// TriggerIngestion starts a manual ingestion run. Restricted to platform admins.
func (h *AnttHandler) TriggerIngestion(c *gin.Context) {
	if middleware.CallerRole(c) != "admin" {
		writeError(c, http.StatusForbidden, "admin role required")
		return
	}
	run, err := h.antt.RunOnce(c.Request.Context())
	if err != nil {
		// The run record still tells the admin what failed.
		writeJSON(c, http.StatusBadGateway, run)
		return
	}
	writeJSON(c, http.StatusOK, run)
}

// ListIngestions returns recent ingestion runs, newest first.
func (h *AnttHandler) ListIngestions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := h.antt.Runs(c.Request.Context(), limit)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, runs)
}
