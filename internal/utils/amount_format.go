package utils

import "github.com/shopspring/decimal"

// FormatAmount formats a monetary amount for display with two decimal places.
// Example: amount 12.3 returns "R$ 12.30".
func FormatAmount(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}
