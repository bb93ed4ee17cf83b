package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rotaclick/internal/modules/pricing"
)

// GeminiProvider implements SummaryProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiProvider{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SummarizeAnalysis asks the model for a customer-facing narrative of the
// analysis. Cost figures are deliberately excluded from the prompt; the model
// only sees the quoted price, the margin tier and any compliance caveats.
func (p *GeminiProvider) SummarizeAnalysis(ctx context.Context, req SummaryRequest, analysis pricing.Analysis) (*QuoteSummary, error) {
	prompt := buildSummaryPrompt(req, analysis)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	cleanJSON := cleanJSONString(responseText.String())

	var summary QuoteSummary
	if err := json.Unmarshal([]byte(cleanJSON), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	return &summary, nil
}

func buildSummaryPrompt(req SummaryRequest, analysis pricing.Analysis) string {
	var caveats []string
	for _, alert := range analysis.Compliance.Alerts {
		caveats = append(caveats, alert.Message)
	}

	return fmt.Sprintf(`Você é o assistente de cotações da "RotaClick", uma plataforma de gestão de fretes para transportadoras brasileiras.

Contexto da cotação:
- Origem: %s
- Destino: %s
- Observações da carga: %s
- Classificação da margem: %s
- Alertas de conformidade pendentes: %s

Escreva um resumo curto da cotação para o cliente final, em português.
Regras:
1. NÃO mencione custos internos, margem ou valores de piso regulatório.
2. Se houver alertas de conformidade, liste-os em "caveats" para o operador (não para o cliente).
3. Tom profissional e direto, no máximo 3 frases no "body".

Responda em JSON com os campos: headline, body, caveats.`,
		orUnknown(req.Origin), orUnknown(req.Destination), orUnknown(req.CargoNote),
		analysis.MarginLevel, strings.Join(caveats, "; "))
}

func orUnknown(s string) string {
	if s == "" {
		return "não informado"
	}
	return s
}

// cleanJSONString strips markdown code fences the model sometimes wraps
// around its JSON output.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
