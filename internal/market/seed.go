package market

import (
	"cryptofx/internal/model"

	"github.com/shopspring/decimal"
)

func seedInstruments() []model.Instrument {
	return []model.Instrument{
		{
			ID:        "bitcoin",
			Symbol:    "BTC",
			Name:      "Bitcoin",
			Price:     decimal.RequireFromString("645789.50"),
			Change24h: decimal.RequireFromString("2.45"),
			Volume:    decimal.RequireFromString("28945672100"),
			MarketCap: decimal.RequireFromString("1247658900000"),
			Icon:      "₿",
		},
		{
			ID:        "ethereum",
			Symbol:    "ETH",
			Name:      "Ethereum",
			Price:     decimal.RequireFromString("42567.85"),
			Change24h: decimal.RequireFromString("-1.23"),
			Volume:    decimal.RequireFromString("15687432100"),
			MarketCap: decimal.RequireFromString("512468900000"),
			Icon:      "Ξ",
		},
		{
			ID:        "binancecoin",
			Symbol:    "BNB",
			Name:      "BNB",
			Price:     decimal.RequireFromString("8756.42"),
			Change24h: decimal.RequireFromString("0.87"),
			Volume:    decimal.RequireFromString("1847563210"),
			MarketCap: decimal.RequireFromString("134567890000"),
			Icon:      "BNB",
		},
		{
			ID:        "cardano",
			Symbol:    "ADA",
			Name:      "Cardano",
			Price:     decimal.RequireFromString("12.48"),
			Change24h: decimal.RequireFromString("-3.45"),
			Volume:    decimal.RequireFromString("567432100"),
			MarketCap: decimal.RequireFromString("42567890000"),
			Icon:      "ADA",
		},
		{
			ID:        "solana",
			Symbol:    "SOL",
			Name:      "Solana",
			Price:     decimal.RequireFromString("2847.65"),
			Change24h: decimal.RequireFromString("5.67"),
			Volume:    decimal.RequireFromString("2847563210"),
			MarketCap: decimal.RequireFromString("126789450000"),
			Icon:      "SOL",
		},
		{
			ID:        "polkadot",
			Symbol:    "DOT",
			Name:      "Polkadot",
			Price:     decimal.RequireFromString("187.42"),
			Change24h: decimal.RequireFromString("-0.95"),
			Volume:    decimal.RequireFromString("847563210"),
			MarketCap: decimal.RequireFromString("23456789000"),
			Icon:      "DOT",
		},
	}
}

func seedForexPairs() []model.ForexPair {
	return []model.ForexPair{
		{Symbol: "EUR/USD", Price: decimal.RequireFromString("1.0875"), Change: decimal.RequireFromString("0.12")},
		{Symbol: "GBP/USD", Price: decimal.RequireFromString("1.2654"), Change: decimal.RequireFromString("-0.08")},
		{Symbol: "USD/JPY", Price: decimal.RequireFromString("148.75"), Change: decimal.RequireFromString("0.25")},
		{Symbol: "USD/TRY", Price: decimal.RequireFromString("29.45"), Change: decimal.RequireFromString("-0.35")},
		{Symbol: "AUD/USD", Price: decimal.RequireFromString("0.6542"), Change: decimal.RequireFromString("0.18")},
		{Symbol: "USD/CAD", Price: decimal.RequireFromString("1.3487"), Change: decimal.RequireFromString("-0.05")},
	}
}

// LeverageOptions are the selectable multipliers on the trading panels.
var LeverageOptions = []int{1, 2, 5, 10, 20, 50, 100}
