// Package format renders amounts the way the dashboard displays them.
// All functions are pure string builders; valuation edge cases arrive
// here as errors and render as Dash.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dash is rendered where a value has no defined display, e.g. PnL% on
// a zero-margin position.
const Dash = "—"

var printer = message.NewPrinter(language.Turkish)

var currencySymbols = map[string]string{
	"TRY": "₺",
	"USD": "₺", // the platform quotes USD amounts in lira on screen
	"EUR": "€",
	"GBP": "£",
}

var (
	thousand = decimal.NewFromInt(1e3)
	million  = decimal.NewFromInt(1e6)
	billion  = decimal.NewFromInt(1e9)
)

// Currency renders an amount with the locale's grouping and two
// decimals, prefixed by the currency symbol.
func Currency(amount decimal.Decimal, code string) string {
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}
	f, _ := amount.Round(2).Float64()
	return symbol + printer.Sprintf("%.2f", f)
}

// Percent renders with an explicit leading sign and two decimals.
func Percent(value decimal.Decimal) string {
	s := value.StringFixed(2)
	if value.Sign() >= 0 {
		s = "+" + s
	}
	return s + "%"
}

// PercentOrDash folds a valuation edge case into the dash sentinel.
func PercentOrDash(value decimal.Decimal, err error) string {
	if err != nil {
		return Dash
	}
	return Percent(value)
}

// Compact abbreviates large magnitudes with K/M/B suffixes.
func Compact(value decimal.Decimal) string {
	abs := value.Abs()
	switch {
	case abs.GreaterThanOrEqual(billion):
		return value.Div(billion).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(million):
		return value.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return value.Div(thousand).StringFixed(2) + "K"
	}
	return value.StringFixed(2)
}

// Pips renders a pip count with an explicit sign.
func Pips(pips int64) string {
	if pips >= 0 {
		return fmt.Sprintf("+%d", pips)
	}
	return fmt.Sprintf("%d", pips)
}
