package service

import (
	"math"

	"github.com/shopspring/decimal"

	"business-simulator/domain"
)

// FormatCurrency renders a monetary amount with no decimals, e.g. "-$1,140".
func FormatCurrency(value float64) string {
	return formatWhole(value, "$")
}

// FormatWhole renders a value rounded to a whole number with thousands
// separators, e.g. "1,000,000".
func FormatWhole(value float64) string {
	return formatWhole(value, "")
}

func formatWhole(value float64, symbol string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	d := decimal.NewFromFloat(value).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + symbol + groupThousands(d.StringFixed(0))
}

// FormatNumber renders a value with at most one decimal, e.g. "29.4".
func FormatNumber(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	return decimal.NewFromFloat(value).Round(1).String()
}

// FormatAttainable renders a value or the given fallback when never reached.
func FormatAttainable(a domain.Attainable, unit, never string) string {
	v, ok := a.Value()
	if !ok {
		return never
	}
	if unit == "" {
		return FormatNumber(v)
	}
	return FormatNumber(v) + " " + unit
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	out := digits[:head]
	for i := head; i < len(digits); i += 3 {
		out += "," + digits[i:i+3]
	}
	return out
}
