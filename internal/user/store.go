// Package user holds registered accounts in memory. One verified user
// is seeded with the balances the dashboard expects.
package user

import (
	"errors"
	"strings"
	"sync"
	"time"

	"cryptofx/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailTaken  = errors.New("email is already registered")
	ErrInvalidName = errors.New("name is required")
)

type Store struct {
	mu     sync.RWMutex
	users  map[string]model.User
	creds  map[string]string // user id -> bcrypt hash
	emails map[string]string // lowercased email -> user id
}

func NewStore() *Store {
	s := &Store{
		users:  make(map[string]model.User),
		creds:  make(map[string]string),
		emails: make(map[string]string),
	}
	seeded := model.User{
		ID:       "1",
		Email:    "john.doe@example.com",
		Name:     "John Doe",
		Balance:  decimal.RequireFromString("125847.50"),
		Verified: true,
		Notifications: model.NotificationPrefs{
			Email:       true,
			Push:        true,
			Trading:     true,
			Deposits:    true,
			Withdrawals: true,
		},
		CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	s.users[seeded.ID] = seeded
	s.emails[strings.ToLower(seeded.Email)] = seeded.ID
	return s
}

func (s *Store) Get(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) GetByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return s.users[id], nil
}

func (s *Store) CredentialHash(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.creds[id]
	if !ok {
		return "", ErrNotFound
	}
	return hash, nil
}

// Create registers a new, unverified user with a zero balance.
func (s *Store) Create(email, name, passwordHash string) (model.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emails[key]; taken {
		return model.User{}, ErrEmailTaken
	}
	u := model.User{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Balance:   decimal.Zero,
		Verified:  false,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.ID] = u
	s.creds[u.ID] = passwordHash
	s.emails[key] = u.ID
	return u, nil
}

// UpdateProfile changes the display name and notification preferences.
func (s *Store) UpdateProfile(id, name string, prefs model.NotificationPrefs) (model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, ErrInvalidName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	u.Name = name
	u.Notifications = prefs
	s.users[id] = u
	return u, nil
}

// Balance implements wallet.BalanceSource.
func (s *Store) Balance(id string) (decimal.Decimal, error) {
	u, err := s.Get(id)
	if err != nil {
		return decimal.Zero, err
	}
	return u.Balance, nil
}
