// README: Road-distance estimation handler.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/maps"
	"rotaclick/internal/types"
)

type DistanceHandler struct {
	routes *maps.RouteService
}

// NewDistanceHandler accepts a nil RouteService when no Maps API key is
// configured; the endpoint then answers from coordinates only.
func NewDistanceHandler(routes *maps.RouteService) *DistanceHandler {
	return &DistanceHandler{routes: routes}
}

type coordinatePair struct {
	originLat, originLng float64
	destLat, destLng     float64
}

// queryCoordinates reads the optional lat/lng query params; all four must be
// present and numeric for the pair to count.
func queryCoordinates(c *gin.Context) (coordinatePair, bool) {
	var p coordinatePair
	fields := []struct {
		name string
		dst  *float64
	}{
		{"origem_lat", &p.originLat},
		{"origem_lng", &p.originLng},
		{"destino_lat", &p.destLat},
		{"destino_lng", &p.destLng},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(c.Query(f.name), 64)
		if err != nil {
			return coordinatePair{}, false
		}
		*f.dst = v
	}
	return p, true
}

// Estimate returns the driving distance between two points so the quote form
// can pre-fill distancia_km. Addresses go through the Directions API; when the
// API is unavailable and coordinates were supplied, a straight-line estimate
// scaled by a road factor is returned and marked as approximate.
func (h *DistanceHandler) Estimate(c *gin.Context) {
	origin := c.Query("origem")
	destination := c.Query("destino")
	coords, haveCoords := queryCoordinates(c)

	if h.routes != nil && origin != "" && destination != "" {
		est, err := h.routes.RoadDistance(c.Request.Context(), origin, destination)
		if err == nil {
			writeJSON(c, http.StatusOK, gin.H{
				"distancia_km":    est.DistanceKm,
				"duracao_minutos": est.Duration.Minutes(),
				"aproximado":      false,
			})
			return
		}
		if !haveCoords {
			writeError(c, http.StatusBadGateway, "route lookup failed")
			return
		}
	}

	if !haveCoords {
		if h.routes == nil {
			writeError(c, http.StatusServiceUnavailable, "distance estimation not configured")
			return
		}
		writeError(c, http.StatusBadRequest, "origem and destino are required")
		return
	}

	km := maps.FallbackRoadKm(coords.originLat, coords.originLng, coords.destLat, coords.destLng)
	writeJSON(c, http.StatusOK, gin.H{
		"distancia_km": types.Round2(km),
		"aproximado":   true,
	})
}
