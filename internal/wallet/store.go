// Package wallet owns the transaction history and the deposit/withdraw
// command flow.
package wallet

import (
	"errors"
	"sync"
	"time"

	"cryptofx/internal/model"
	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound   = errors.New("transaction not found")
	ErrNotPending = errors.New("transaction is not pending")
)

type Store struct {
	mu           sync.RWMutex
	transactions []model.Transaction
}

func NewStore() *Store {
	return &Store{transactions: seedTransactions()}
}

func (s *Store) Add(txn model.Transaction) {
	s.mu.Lock()
	s.transactions = append([]model.Transaction{txn}, s.transactions...)
	s.mu.Unlock()
}

// List returns the user's transactions, newest first, optionally
// filtered by type.
func (s *Store) List(userID string, typ types.TransactionType) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if t.UserID != userID {
			continue
		}
		if typ != "" && t.Type != typ {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ListPending returns every pending transaction across users, for the
// admin review queue.
func (s *Store) ListPending() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, 0)
	for _, t := range s.transactions {
		if t.Status == types.TransactionStatusPending {
			out = append(out, t)
		}
	}
	return out
}

// HasPending reports whether the user already has a pending request of
// the given type in flight.
func (s *Store) HasPending(userID string, typ types.TransactionType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.UserID == userID && t.Type == typ && t.Status == types.TransactionStatusPending {
			return true
		}
	}
	return false
}

// Settle moves a pending transaction to its final status.
func (s *Store) Settle(id string, status types.TransactionStatus) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		if s.transactions[i].Status != types.TransactionStatusPending {
			return model.Transaction{}, ErrNotPending
		}
		s.transactions[i].Status = status
		return s.transactions[i], nil
	}
	return model.Transaction{}, ErrNotFound
}

func seedTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:        "1",
			UserID:    "1",
			Type:      types.TransactionTypeDeposit,
			Amount:    decimal.NewFromInt(50000),
			Status:    types.TransactionStatusCompleted,
			Method:    "Papara",
			CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			UserID:    "1",
			Type:      types.TransactionTypeWithdraw,
			Amount:    decimal.NewFromInt(25000),
			Status:    types.TransactionStatusPending,
			Method:    "Havale",
			CreatedAt: time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			UserID:    "1",
			Type:      types.TransactionTypeTrade,
			Amount:    decimal.NewFromInt(10000),
			Status:    types.TransactionStatusCompleted,
			CreatedAt: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
	}
}
