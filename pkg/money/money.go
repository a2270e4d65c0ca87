// Package money renders monetary amounts for display.
//
// Aggregation happens on float64 values; this package only rounds them to
// cents (half away from zero) and applies English digit grouping.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency struct {
	Code   string
	Symbol string
}

var (
	USD = Currency{Code: "USD", Symbol: "$"}
	GBP = Currency{Code: "GBP", Symbol: "£"}
)

// Round returns amount rounded to two decimal places.
func Round(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// Format renders amount as e.g. "$1,234.50" or "-£0.75".
func Format(amount float64, c Currency) string {
	d := Round(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	p := message.NewPrinter(language.English)
	return sign + c.Symbol + p.Sprintf("%.2f", d.InexactFloat64())
}

// FormatUSD is Format with USD.
func FormatUSD(amount float64) string {
	return Format(amount, USD)
}
