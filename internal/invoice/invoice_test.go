package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSeededInvoiceTotals(t *testing.T) {
	inv := Current()

	subtotal := Subtotal(inv.Items)
	require.Equal(t, "1113.74", subtotal.String())

	tax := Tax(subtotal, DefaultTaxRate)
	require.Equal(t, "200.4732", tax.String())

	total := Total(subtotal, tax)
	require.Equal(t, "1314.2132", total.String())
}

// Displayed figures round half away from zero to two decimals; the
// total is rounded from the exact sum, not summed from rounded parts.
func TestTotalsRounding(t *testing.T) {
	totals := Current().Totals(DefaultTaxRate)
	require.Equal(t, "1113.74", totals.Subtotal.String())
	require.Equal(t, "200.47", totals.Tax.String())
	require.Equal(t, "1314.21", totals.Total.String())
}

func TestItemTotal(t *testing.T) {
	it := Item{Quantity: decimal.NewFromInt(45), UnitPrice: decimal.RequireFromString("12.50")}
	require.Equal(t, "562.5", it.Total().String())
}

func TestSubtotalEmpty(t *testing.T) {
	require.True(t, Subtotal(nil).IsZero())
}
