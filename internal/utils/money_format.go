package utils

import "github.com/shopspring/decimal"

// Currency precision used for display. Internal arithmetic never rounds;
// only presentation goes through these helpers.
const displayPrecision = 2

// FormatAmount renders an amount with display precision.
// Example: 12.345 -> "12.35", 25 -> "25.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(displayPrecision)
}
