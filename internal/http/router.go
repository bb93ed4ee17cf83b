// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/ai"
	"rotaclick/internal/http/handlers"
	"rotaclick/internal/http/middleware"
	"rotaclick/internal/infra"
	"rotaclick/internal/maps"
	"rotaclick/internal/modules/aiquota"
	"rotaclick/internal/modules/antt"
	"rotaclick/internal/modules/pricing"
)

type RouterDeps struct {
	Pricing  *pricing.Service
	Antt     *antt.Service
	Quota    *aiquota.Service
	Routes   *maps.RouteService // nil disables /api/distance
	Summary  ai.SummaryProvider // nil disables /api/pricing/summary
	Verifier infra.TokenVerifier
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	pricingHandler := handlers.NewPricingHandler(deps.Pricing)
	api.POST("/pricing/analyze", pricingHandler.Analyze)
	api.POST("/pricing/simulate", pricingHandler.Simulate)

	carrierHandler := handlers.NewCarrierHandler(deps.Pricing)
	api.GET("/carriers/:id/cost-parameters", carrierHandler.GetCostParameters)
	api.PUT("/carriers/:id/cost-parameters", carrierHandler.PutCostParameters)

	anttHandler := handlers.NewAnttHandler(deps.Antt)
	api.GET("/antt/snapshot/latest", anttHandler.LatestSnapshot)
	api.POST("/antt/ingestions", anttHandler.TriggerIngestion)
	api.GET("/antt/ingestions", anttHandler.ListIngestions)

	distanceHandler := handlers.NewDistanceHandler(deps.Routes)
	api.GET("/distance", distanceHandler.Estimate)

	summaryHandler := handlers.NewSummaryHandler(deps.Pricing, deps.Quota, deps.Summary)
	api.POST("/pricing/summary", summaryHandler.Summarize)

	return r
}
