package ai

// SummaryRequest carries the trip context the narrative should mention.
type SummaryRequest struct {
	Origin      string
	Destination string
	CargoNote   string
}

// QuoteSummary is the structured output expected from the model.
type QuoteSummary struct {
	// Headline is a one-sentence summary of the quote.
	Headline string `json:"headline"`

	// Body is a short paragraph in Portuguese explaining the price, written
	// for the end customer (no internal cost figures).
	Body string `json:"body"`

	// Caveats lists points the operator should double-check before sending,
	// e.g. a pending compliance alert. May be empty.
	Caveats []string `json:"caveats,omitempty"`
}
