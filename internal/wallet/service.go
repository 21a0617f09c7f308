package wallet

import (
	"errors"
	"time"

	"cryptofx/internal/market"
	"cryptofx/internal/model"
	"cryptofx/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrInsufficientBalance = errors.New("amount exceeds balance")
	ErrPendingExists       = errors.New("a request of this type is already pending")
)

// BalanceSource resolves a user's available balance. The user store
// implements it.
type BalanceSource interface {
	Balance(userID string) (decimal.Decimal, error)
}

type Service struct {
	store    *Store
	balances BalanceSource
	bus      *market.Bus
	log      *logrus.Logger
}

func NewService(store *Store, balances BalanceSource, bus *market.Bus, log *logrus.Logger) *Service {
	return &Service{store: store, balances: balances, bus: bus, log: log}
}

func (s *Service) Transactions(userID string, typ types.TransactionType) []model.Transaction {
	return s.store.List(userID, typ)
}

func (s *Service) Pending() []model.Transaction {
	return s.store.ListPending()
}

// SubmitDeposit validates and records a pending deposit request. Only
// one deposit may be in flight per user.
func (s *Service) SubmitDeposit(userID string, amount decimal.Decimal, methodID string) (model.Transaction, error) {
	method, err := s.validate(userID, types.TransactionTypeDeposit, amount, methodID)
	if err != nil {
		return model.Transaction{}, err
	}
	return s.submit(userID, types.TransactionTypeDeposit, amount, method.Name), nil
}

// SubmitWithdraw additionally checks the requested amount against the
// user's balance.
func (s *Service) SubmitWithdraw(userID string, amount decimal.Decimal, methodID string) (model.Transaction, error) {
	method, err := s.validate(userID, types.TransactionTypeWithdraw, amount, methodID)
	if err != nil {
		return model.Transaction{}, err
	}
	balance, err := s.balances.Balance(userID)
	if err != nil {
		return model.Transaction{}, err
	}
	if amount.GreaterThan(balance) {
		return model.Transaction{}, ErrInsufficientBalance
	}
	return s.submit(userID, types.TransactionTypeWithdraw, amount, method.Name), nil
}

// Approve settles a pending transaction as completed.
func (s *Service) Approve(id string) (model.Transaction, error) {
	return s.settle(id, types.TransactionStatusCompleted)
}

// Reject settles a pending transaction as rejected.
func (s *Service) Reject(id string) (model.Transaction, error) {
	return s.settle(id, types.TransactionStatusRejected)
}

func (s *Service) validate(userID string, typ types.TransactionType, amount decimal.Decimal, methodID string) (model.PaymentMethod, error) {
	if !amount.IsPositive() {
		return model.PaymentMethod{}, ErrInvalidAmount
	}
	method, ok := methodByID(methodID)
	if !ok {
		return model.PaymentMethod{}, ErrUnknownMethod
	}
	if s.store.HasPending(userID, typ) {
		return model.PaymentMethod{}, ErrPendingExists
	}
	return method, nil
}

func (s *Service) submit(userID string, typ types.TransactionType, amount decimal.Decimal, methodName string) model.Transaction {
	txn := model.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Amount:    amount,
		Status:    types.TransactionStatusPending,
		Method:    methodName,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Add(txn)
	s.log.WithFields(logrus.Fields{
		"transaction_id": txn.ID,
		"user_id":        userID,
		"type":           typ,
		"amount":         amount.String(),
	}).Info("transaction submitted")
	s.publish(txn)
	return txn
}

func (s *Service) settle(id string, status types.TransactionStatus) (model.Transaction, error) {
	txn, err := s.store.Settle(id, status)
	if err != nil {
		return model.Transaction{}, err
	}
	s.log.WithFields(logrus.Fields{
		"transaction_id": txn.ID,
		"status":         status,
	}).Info("transaction settled")
	s.publish(txn)
	return txn, nil
}

func (s *Service) publish(txn model.Transaction) {
	if s.bus != nil {
		s.bus.Publish(market.Event{Type: "transaction", Data: txn})
	}
}
