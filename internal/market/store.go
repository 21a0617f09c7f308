// Package market owns the instrument and forex-pair snapshots the rest
// of the dashboard reads. There is no live feed: quotes change only when
// the whole set is replaced or an instrument is added through the admin
// panel, and each change is published on the bus.
package market

import (
	"errors"
	"strings"
	"sync"

	"cryptofx/internal/model"
)

var ErrNotFound = errors.New("instrument not found")

type Store struct {
	mu          sync.RWMutex
	instruments []model.Instrument
	pairs       []model.ForexPair
	bus         *Bus
}

func NewStore(bus *Bus) *Store {
	return &Store{
		instruments: seedInstruments(),
		pairs:       seedForexPairs(),
		bus:         bus,
	}
}

func (s *Store) Instruments() []model.Instrument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Instrument, len(s.instruments))
	copy(out, s.instruments)
	return out
}

func (s *Store) ForexPairs() []model.ForexPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ForexPair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

func (s *Store) GetInstrument(id string) (model.Instrument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inst := range s.instruments {
		if inst.ID == id {
			return inst, nil
		}
	}
	return model.Instrument{}, ErrNotFound
}

func (s *Store) GetForexPair(symbol string) (model.ForexPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pairs {
		if strings.EqualFold(p.Symbol, symbol) {
			return p, nil
		}
	}
	return model.ForexPair{}, ErrNotFound
}

// ReplaceInstruments swaps the whole snapshot set. This is the only way
// prices move.
func (s *Store) ReplaceInstruments(instruments []model.Instrument) {
	s.mu.Lock()
	s.instruments = make([]model.Instrument, len(instruments))
	copy(s.instruments, instruments)
	s.mu.Unlock()
	s.publish(Event{Type: "instruments", Data: instruments})
}

// Upsert adds an instrument, or replaces it when the id already exists.
func (s *Store) Upsert(inst model.Instrument) {
	s.mu.Lock()
	replaced := false
	for i := range s.instruments {
		if s.instruments[i].ID == inst.ID {
			s.instruments[i] = inst
			replaced = true
			break
		}
	}
	if !replaced {
		s.instruments = append(s.instruments, inst)
	}
	s.mu.Unlock()
	s.publish(Event{Type: "instrument", Data: inst})
}

func (s *Store) publish(evt Event) {
	if s.bus != nil {
		s.bus.Publish(evt)
	}
}
