package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places shown for amounts.
const MoneyPrecision = 2

// RoundMoney rounds an amount for presentation. Calculations keep full precision
// and only call this when a figure leaves the system.
// Example: 8.333333 returns 8.33
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// FormatMoney formats an amount with exactly two decimal places.
// Example: 100000 returns "100000.00"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
