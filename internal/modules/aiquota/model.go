package aiquota

import "errors"

// ErrQuotaExhausted is returned when a carrier has no AI summaries remaining
// for the current month.
var ErrQuotaExhausted = errors.New("monthly AI summary quota exhausted")

// DefaultAllowance is the number of AI quote summaries granted per carrier per
// month.
const DefaultAllowance = 50
