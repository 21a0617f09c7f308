package valuation

import (
	"cryptofx/internal/model"

	"github.com/shopspring/decimal"
)

// Summary backs the summary strips on the dashboard and forex pages.
type Summary struct {
	Count           int             `json:"count"`
	TotalPnL        decimal.Decimal `json:"total_pnl"`
	TotalMargin     decimal.Decimal `json:"total_margin"`
	AverageLeverage decimal.Decimal `json:"average_leverage"`
}

// TotalPnL sums the stored pnl of each position. The stored value is
// trusted as-is, not recomputed from prices.
func TotalPnL(positions []model.Position) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range positions {
		sum = sum.Add(p.PnL)
	}
	return sum
}

// AverageLeverage is the mean leverage, or zero for an empty set.
func AverageLeverage(positions []model.Position) decimal.Decimal {
	if len(positions) == 0 {
		return decimal.Zero
	}
	sum := int64(0)
	for _, p := range positions {
		sum += int64(p.Leverage)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(positions))))
}

// TotalMargin sums posted margin. Spot positions carry no margin and
// contribute nothing.
func TotalMargin(positions []model.Position) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range positions {
		if p.Margin != nil {
			sum = sum.Add(*p.Margin)
		}
	}
	return sum
}

func Summarize(positions []model.Position) Summary {
	return Summary{
		Count:           len(positions),
		TotalPnL:        TotalPnL(positions),
		TotalMargin:     TotalMargin(positions),
		AverageLeverage: AverageLeverage(positions),
	}
}
