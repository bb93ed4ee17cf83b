// README: Profit calculation and margin classification.
package pricing

import "rotaclick/internal/types"

// CalculateProfit derives profit and margin percentage from a quoted price and
// a total cost. When the price is zero or negative the margin is pinned at
// exactly -100 (total loss) instead of dividing by zero.
func CalculateProfit(price, totalCost float64) ProfitResult {
	profit := types.Round2(price - totalCost)
	if price <= 0 {
		return ProfitResult{ProfitValue: profit, MarginPercent: -100}
	}
	return ProfitResult{
		ProfitValue:   profit,
		MarginPercent: types.Round2(profit / price * 100),
	}
}

// ClassifyMargin maps a margin percentage to its qualitative tier. Total over
// all real inputs; boundaries are 0 (inclusive for critical), 8 (inclusive for
// ok) and 15 (inclusive for ok).
func ClassifyMargin(marginPercent float64) MarginLevel {
	switch {
	case marginPercent < 0:
		return MarginLoss
	case marginPercent < 8:
		return MarginCritical
	case marginPercent <= 15:
		return MarginOK
	default:
		return MarginGreat
	}
}
