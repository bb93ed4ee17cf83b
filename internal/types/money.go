// README: Common scalar types and currency helpers used across modules.
package types

import "math"

// ID is an opaque record identifier (carrier, quote, snapshot).
type ID string

// Round2 rounds a currency amount to 2 decimal places (half away from zero).
// Monetary components are rounded individually before aggregation so that a
// total is always reproducible from its printed breakdown.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
