// README: Deterministic advisory messages for a pricing analysis.
package pricing

import "fmt"

// SuggestionInput collects the figures the suggestion rules read.
type SuggestionInput struct {
	MarginPercent float64
	TotalCost     float64
	CurrentPrice  float64
	AnttFloor     *float64 // nil when no reference snapshot was available
}

// targetMarginPercent is the minimum margin the advisory rules steer towards.
const targetMarginPercent = 8.0

// BuildSuggestions evaluates the advisory rules in a fixed order and returns
// every message that applies. Same input, same output, byte for byte: the
// messages carry no clock, randomness or external data, so callers can rely on
// exact string matching.
func BuildSuggestions(in SuggestionInput) []string {
	var out []string

	if in.MarginPercent < 0 {
		out = append(out, "Margem negativa: revise o rateio de custo fixo e o preço final da cotação.")
	} else if in.MarginPercent < targetMarginPercent {
		out = append(out, "Margem crítica: ajuste o preço para atingir pelo menos 8% de margem.")
	}

	minPriceFor8 := in.TotalCost / (1 - targetMarginPercent/100)
	if minPriceFor8 > in.CurrentPrice {
		out = append(out, fmt.Sprintf("Preço mínimo para garantir 8%% de margem: R$ %.2f", minPriceFor8))
	}

	if in.AnttFloor != nil && in.CurrentPrice < *in.AnttFloor {
		out = append(out, fmt.Sprintf("Preço abaixo do piso mínimo ANTT de R$ %.2f", *in.AnttFloor))
	}

	return out
}
