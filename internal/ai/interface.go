package ai

import (
	"context"

	"rotaclick/internal/modules/pricing"
)

// SummaryProvider turns a finished pricing analysis into a short narrative for
// the customer-facing quote. The deterministic suggestions stay untouched;
// this is presentation only, and the feature is disabled when no provider is
// configured.
type SummaryProvider interface {
	SummarizeAnalysis(ctx context.Context, req SummaryRequest, analysis pricing.Analysis) (*QuoteSummary, error)
}
