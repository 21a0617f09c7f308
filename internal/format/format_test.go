package format

import (
	"testing"

	"cryptofx/internal/valuation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCurrencyTurkishGrouping(t *testing.T) {
	require.Equal(t, "₺1.234,50", Currency(d("1234.5"), "USD"))
	require.Equal(t, "₺0,00", Currency(decimal.Zero, "TRY"))
	require.Equal(t, "€325,50", Currency(d("325.5"), "EUR"))
}

func TestCurrencyUnknownCodeFallsBack(t *testing.T) {
	require.Equal(t, "CHF 12,00", Currency(d("12"), "CHF"))
}

func TestCurrencyIdempotent(t *testing.T) {
	v := d("125847.50")
	first := Currency(v, "USD")
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Currency(v, "USD"))
	}
}

func TestPercent(t *testing.T) {
	require.Equal(t, "+2.45%", Percent(d("2.45")))
	require.Equal(t, "-1.23%", Percent(d("-1.23")))
	require.Equal(t, "+0.00%", Percent(decimal.Zero))
}

func TestPercentOrDash(t *testing.T) {
	pct, err := valuation.PnLPercent(d("100"), decimal.Zero)
	require.Equal(t, Dash, PercentOrDash(pct, err))

	pct, err = valuation.PnLPercent(d("50"), d("100"))
	require.Equal(t, "+50.00%", PercentOrDash(pct, err))
}

func TestCompact(t *testing.T) {
	cases := map[string]string{
		"999.994":       "999.99",
		"1000":          "1.00K",
		"15687432100":   "15.69B",
		"28945672100":   "28.95B",
		"2847563210":    "2.85B",
		"1500000":       "1.50M",
		"-2500000":      "-2.50M",
		"1247658900000": "1247.66B",
	}
	for in, want := range cases {
		require.Equal(t, want, Compact(d(in)), "input %s", in)
	}
}

func TestPips(t *testing.T) {
	require.Equal(t, "+25", Pips(25))
	require.Equal(t, "-25", Pips(-25))
	require.Equal(t, "+0", Pips(0))
}
