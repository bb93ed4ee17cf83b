// README: Simulation endpoint tests; stateless, no database required.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rotaclick/internal/modules/pricing"
)

func simulateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPricingHandler(nil) // Simulate never touches the service
	r.POST("/api/pricing/simulate", h.Simulate)
	return r
}

func postSimulate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/simulate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	simulateRouter().ServeHTTP(w, req)
	return w
}

const simulateBody = `{
	"viagem": {
		"distancia_km": 500,
		"horas_espera": 6,
		"pedagio_estimado": 120,
		"preco": 3500,
		"vale_pedagio_incluido": true
	},
	"parametros_custo": {
		"preco_diesel_litro": 6,
		"consumo_medio_km_l": 3,
		"custo_variavel_km": 1.2,
		"custo_fixo_mensal": 12000,
		"km_mensal_estimado": 10000,
		"custo_espera_hora": 45,
		"taxa_administrativa_percentual": 2,
		"taxa_coleta_entrega": 25,
		"fator_retorno_vazio": 0.15
	}
}`

func TestSimulate(t *testing.T) {
	w := postSimulate(t, simulateBody)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var a pricing.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if a.Breakdown.TotalCost != 2865.00 {
		t.Fatalf("total cost = %v, want 2865.00", a.Breakdown.TotalCost)
	}
	if a.Profit.ProfitValue != 635.00 {
		t.Fatalf("profit = %v, want 635.00", a.Profit.ProfitValue)
	}
	if a.MarginLevel != pricing.MarginGreat {
		t.Fatalf("margin level = %s, want %s", a.MarginLevel, pricing.MarginGreat)
	}
	if a.FloorPrice != nil {
		t.Fatalf("no snapshot supplied, floor should be absent: %v", *a.FloorPrice)
	}
	if a.Compliance.HasBlockingErrors {
		t.Fatalf("default documents must be regular, got %+v", a.Compliance.Alerts)
	}
}

func TestSimulate_WithSnapshot(t *testing.T) {
	body := strings.TrimSuffix(simulateBody, "\n}") + `,
	"referencia_antt": {
		"fonte_url": "https://dados.antt.gov.br/piso",
		"versao": "res-5867/2026",
		"formula_piso": {
			"custo_base_km": 1.4,
			"custo_eixo_km": 0.22,
			"coeficiente_diesel": 0.08,
			"multiplicadores_operacao": {"default": 1.0}
		}
	}
}`

	w := postSimulate(t, body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var a pricing.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if a.FloorPrice == nil || *a.FloorPrice != 1030.00 {
		t.Fatalf("floor price = %v, want 1030.00", a.FloorPrice)
	}
}

func TestSimulate_InvalidJSON(t *testing.T) {
	w := postSimulate(t, `{"viagem": `)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSimulate_InvalidTrip(t *testing.T) {
	body := `{
	"viagem": {"distancia_km": 0, "preco": 1000},
	"parametros_custo": {"consumo_medio_km_l": 3, "km_mensal_estimado": 10000}
}`
	w := postSimulate(t, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}

func TestSimulate_InvalidCostParams(t *testing.T) {
	body := `{
	"viagem": {"distancia_km": 100, "preco": 1000},
	"parametros_custo": {"consumo_medio_km_l": 0, "km_mensal_estimado": 10000}
}`
	w := postSimulate(t, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}
