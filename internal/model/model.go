package model

import (
	"time"

	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
)

type Instrument struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
	Volume    decimal.Decimal `json:"volume"`
	MarketCap decimal.Decimal `json:"market_cap"`
	Icon      string          `json:"icon"`
}

type ForexPair struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
	Change decimal.Decimal `json:"change"`
}

// Position is the canonical shape for both spot and forex exposure.
// Margin, StopLoss, TakeProfit and Swap are only set for forex
// positions; spot positions carry none of them.
type Position struct {
	ID           string               `json:"id"`
	UserID       string               `json:"user_id"`
	InstrumentID string               `json:"instrument_id"`
	Market       types.MarketKind     `json:"market"`
	Direction    types.Direction      `json:"direction"`
	Size         decimal.Decimal      `json:"size"`
	EntryPrice   decimal.Decimal      `json:"entry_price"`
	CurrentPrice decimal.Decimal      `json:"current_price"`
	Leverage     int                  `json:"leverage"`
	PnL          decimal.Decimal      `json:"pnl"`
	Margin       *decimal.Decimal     `json:"margin,omitempty"`
	StopLoss     *decimal.Decimal     `json:"stop_loss,omitempty"`
	TakeProfit   *decimal.Decimal     `json:"take_profit,omitempty"`
	Swap         *decimal.Decimal     `json:"swap,omitempty"`
	Status       types.PositionStatus `json:"status"`
	OpenedAt     time.Time            `json:"opened_at"`
}

type Transaction struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Type      types.TransactionType   `json:"type"`
	Amount    decimal.Decimal         `json:"amount"`
	Status    types.TransactionStatus `json:"status"`
	Method    string                  `json:"method,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type NotificationPrefs struct {
	Email       bool `json:"email"`
	SMS         bool `json:"sms"`
	Push        bool `json:"push"`
	Trading     bool `json:"trading"`
	Deposits    bool `json:"deposits"`
	Withdrawals bool `json:"withdrawals"`
}

type User struct {
	ID            string            `json:"id"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	Balance       decimal.Decimal   `json:"balance"`
	Verified      bool              `json:"verified"`
	Notifications NotificationPrefs `json:"notifications"`
	CreatedAt     time.Time         `json:"created_at"`
}

type AdminStats struct {
	TotalUsers         int             `json:"total_users"`
	TotalVolume        decimal.Decimal `json:"total_volume"`
	PendingWithdrawals int             `json:"pending_withdrawals"`
	PendingDeposits    int             `json:"pending_deposits"`
}

type PaymentMethod struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Icon    string          `json:"icon"`
	FeeRate decimal.Decimal `json:"fee_rate"`
}
