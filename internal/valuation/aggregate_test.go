package valuation

import (
	"testing"

	"cryptofx/internal/model"
	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func spot(pnl string, leverage int) model.Position {
	return model.Position{
		Market:   types.MarketKindSpot,
		PnL:      decimal.RequireFromString(pnl),
		Leverage: leverage,
	}
}

func forex(pnl, margin string, leverage int) model.Position {
	m := decimal.RequireFromString(margin)
	return model.Position{
		Market:   types.MarketKindForex,
		PnL:      decimal.RequireFromString(pnl),
		Margin:   &m,
		Leverage: leverage,
	}
}

func TestTotalPnL(t *testing.T) {
	positions := []model.Position{
		spot("12894.75", 10),
		spot("4864.30", 5),
		spot("6953.00", 20),
	}
	require.Equal(t, "24712.05", TotalPnL(positions).String())
}

func TestTotalPnLEmpty(t *testing.T) {
	require.True(t, TotalPnL(nil).IsZero())
}

func TestAverageLeverage(t *testing.T) {
	positions := []model.Position{spot("0", 10), spot("0", 5), spot("0", 20)}
	avg := AverageLeverage(positions)
	require.Equal(t, "11.7", avg.Round(1).String())
}

func TestAverageLeverageEmpty(t *testing.T) {
	require.True(t, AverageLeverage(nil).IsZero())
	require.True(t, AverageLeverage([]model.Position{}).IsZero())
}

func TestTotalMarginSkipsSpot(t *testing.T) {
	positions := []model.Position{
		forex("375", "325.5", 50),
		forex("208", "337.36", 30),
		forex("500", "297", 100),
		spot("12894.75", 10),
	}
	require.Equal(t, "959.86", TotalMargin(positions).String())
}

func TestSummarize(t *testing.T) {
	positions := []model.Position{
		forex("375", "325.5", 50),
		forex("-120", "337.36", 30),
	}
	s := Summarize(positions)
	require.Equal(t, 2, s.Count)
	require.Equal(t, "255", s.TotalPnL.String())
	require.Equal(t, "662.86", s.TotalMargin.String())
	require.Equal(t, "40", s.AverageLeverage.String())
}
