// Package valuation holds the position and order arithmetic shared by
// the spot panel, the forex panel and the positions lists. Everything
// here is pure; callers decide how edge cases render.
package valuation

import (
	"errors"

	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
)

var (
	ErrZeroLeverage = errors.New("leverage must be positive")
	ErrZeroMargin   = errors.New("margin is zero")
	ErrZeroPrice    = errors.New("price must be positive")
	ErrBadPercent   = errors.New("percent must be within [0,100]")
)

// DefaultOrderFeeRate applies to limit and stop order previews.
var DefaultOrderFeeRate = decimal.RequireFromString("0.001")

var (
	hundred   = decimal.NewFromInt(100)
	pipFactor = decimal.NewFromInt(10000)
)

// Margin returns the capital required to hold qty at price under the
// given leverage: qty*price/leverage.
func Margin(qty, price decimal.Decimal, leverage int) (decimal.Decimal, error) {
	if leverage <= 0 {
		return decimal.Zero, ErrZeroLeverage
	}
	return qty.Mul(price).Div(decimal.NewFromInt(int64(leverage))), nil
}

// UnrealizedPnL is (current-entry)*qty for a long position and the
// sign-flipped value for a short. No rounding is applied here.
func UnrealizedPnL(entry, current, qty decimal.Decimal, dir types.Direction) decimal.Decimal {
	pnl := current.Sub(entry).Mul(qty)
	if dir == types.DirectionShort {
		return pnl.Neg()
	}
	return pnl
}

// PnLPercent is pnl/margin*100. A zero margin is an edge case the
// display layer renders as a dash, so it surfaces as ErrZeroMargin
// instead of dividing.
func PnLPercent(pnl, margin decimal.Decimal) (decimal.Decimal, error) {
	if margin.IsZero() {
		return decimal.Zero, ErrZeroMargin
	}
	return pnl.Div(margin).Mul(hundred), nil
}

// PipDistance converts a price move into pips under the 4-decimal
// convention. 2-decimal JPY-style pairs are not special-cased, so their
// pip figures come out scaled by 100; that matches the behavior this
// was ported from and stays until product decides otherwise.
func PipDistance(entry, current decimal.Decimal, dir types.Direction) int64 {
	diff := current.Sub(entry)
	if dir == types.DirectionShort {
		diff = diff.Neg()
	}
	return diff.Mul(pipFactor).Round(0).IntPart()
}

// PotentialPnL is the profit or loss realized if price moves from the
// current quote to level, e.g. a stop-loss or take-profit target.
func PotentialPnL(current, level, qty decimal.Decimal, dir types.Direction) decimal.Decimal {
	return UnrealizedPnL(current, level, qty, dir)
}

// Fee returns notional*rate.
func Fee(notional, rate decimal.Decimal) decimal.Decimal {
	return notional.Mul(rate)
}

// MaxQuantity is the largest position size the balance supports at the
// given leverage: balance*leverage/price.
func MaxQuantity(balance decimal.Decimal, leverage int, price decimal.Decimal) (decimal.Decimal, error) {
	if leverage <= 0 {
		return decimal.Zero, ErrZeroLeverage
	}
	if !price.IsPositive() {
		return decimal.Zero, ErrZeroPrice
	}
	return balance.Mul(decimal.NewFromInt(int64(leverage))).Div(price), nil
}

// QuantityFromPercent sizes an order as pct% of the maximum quantity.
// pct must lie within [0,100]. Minimum lot rounding is the caller's
// concern.
func QuantityFromPercent(balance decimal.Decimal, leverage int, price, pct decimal.Decimal) (decimal.Decimal, error) {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero, ErrBadPercent
	}
	max, err := MaxQuantity(balance, leverage, price)
	if err != nil {
		return decimal.Zero, err
	}
	return max.Mul(pct).Div(hundred), nil
}
