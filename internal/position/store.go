// Package position holds the seeded open positions and the close flow.
package position

import (
	"errors"
	"sync"
	"time"

	"cryptofx/internal/model"
	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("position not found")
	ErrAlreadyClosed = errors.New("position already closed")
)

type Store struct {
	mu        sync.RWMutex
	positions []model.Position
}

func NewStore() *Store {
	return &Store{positions: seedPositions()}
}

// List returns the user's positions for one market, optionally filtered
// by status.
func (s *Store) List(userID string, market types.MarketKind, status types.PositionStatus) []model.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Position, 0, len(s.positions))
	for _, p := range s.positions {
		if p.UserID != userID || p.Market != market {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) Get(id string) (model.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.positions {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Position{}, ErrNotFound
}

// MarkClosed transitions a position to closed once.
func (s *Store) MarkClosed(id string) (model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.positions {
		if s.positions[i].ID != id {
			continue
		}
		if s.positions[i].Status == types.PositionStatusClosed {
			return model.Position{}, ErrAlreadyClosed
		}
		s.positions[i].Status = types.PositionStatusClosed
		return s.positions[i], nil
	}
	return model.Position{}, ErrNotFound
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedPositions() []model.Position {
	now := time.Now()
	return []model.Position{
		{
			ID:           "1",
			UserID:       "1",
			InstrumentID: "bitcoin",
			Market:       types.MarketKindSpot,
			Direction:    types.DirectionLong,
			Size:         dec("0.5"),
			EntryPrice:   dec("620000"),
			CurrentPrice: dec("645789.50"),
			Leverage:     10,
			PnL:          dec("12894.75"),
			Status:       types.PositionStatusOpen,
			OpenedAt:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			UserID:       "1",
			InstrumentID: "ethereum",
			Market:       types.MarketKindSpot,
			Direction:    types.DirectionShort,
			Size:         dec("2"),
			EntryPrice:   dec("45000"),
			CurrentPrice: dec("42567.85"),
			Leverage:     5,
			PnL:          dec("4864.30"),
			Status:       types.PositionStatusOpen,
			OpenedAt:     time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "3",
			UserID:       "1",
			InstrumentID: "solana",
			Market:       types.MarketKindSpot,
			Direction:    types.DirectionLong,
			Size:         dec("10"),
			EntryPrice:   dec("2500"),
			CurrentPrice: dec("2847.65"),
			Leverage:     20,
			PnL:          dec("6953.00"),
			Status:       types.PositionStatusOpen,
			OpenedAt:     time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "fx-1",
			UserID:       "1",
			InstrumentID: "EUR/USD",
			Market:       types.MarketKindForex,
			Direction:    types.DirectionLong,
			Size:         dec("1.5"),
			EntryPrice:   dec("1.0850"),
			CurrentPrice: dec("1.0875"),
			Leverage:     50,
			PnL:          dec("375"),
			Margin:       decPtr("325.5"),
			StopLoss:     decPtr("1.0800"),
			TakeProfit:   decPtr("1.0950"),
			Swap:         decPtr("-2.5"),
			Status:       types.PositionStatusOpen,
			OpenedAt:     now.Add(-2 * time.Hour),
		},
		{
			ID:           "fx-2",
			UserID:       "1",
			InstrumentID: "GBP/USD",
			Market:       types.MarketKindForex,
			Direction:    types.DirectionShort,
			Size:         dec("0.8"),
			EntryPrice:   dec("1.2680"),
			CurrentPrice: dec("1.2654"),
			Leverage:     30,
			PnL:          dec("208"),
			Margin:       decPtr("337.36"),
			StopLoss:     decPtr("1.2750"),
			TakeProfit:   decPtr("1.2580"),
			Swap:         decPtr("-1.8"),
			Status:       types.PositionStatusOpen,
			OpenedAt:     now.Add(-5 * time.Hour),
		},
		{
			ID:           "fx-3",
			UserID:       "1",
			InstrumentID: "USD/JPY",
			Market:       types.MarketKindForex,
			Direction:    types.DirectionLong,
			Size:         dec("2.0"),
			EntryPrice:   dec("148.50"),
			CurrentPrice: dec("148.75"),
			Leverage:     100,
			PnL:          dec("500"),
			Margin:       decPtr("297"),
			TakeProfit:   decPtr("150.00"),
			Swap:         decPtr("0.5"),
			Status:       types.PositionStatusOpen,
			OpenedAt:     now.Add(-1 * time.Hour),
		},
	}
}
