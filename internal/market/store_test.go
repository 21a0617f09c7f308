package market

import (
	"testing"

	"cryptofx/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGetInstrument(t *testing.T) {
	s := NewStore(nil)
	inst, err := s.GetInstrument("ethereum")
	require.NoError(t, err)
	require.Equal(t, "ETH", inst.Symbol)
	require.True(t, inst.Price.Equal(decimal.RequireFromString("42567.85")))
}

func TestGetInstrumentMiss(t *testing.T) {
	s := NewStore(nil)
	_, err := s.GetInstrument("dogecoin")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetForexPairCaseInsensitive(t *testing.T) {
	s := NewStore(nil)
	p, err := s.GetForexPair("eur/usd")
	require.NoError(t, err)
	require.Equal(t, "EUR/USD", p.Symbol)
}

func TestUpsertPublishes(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()
	defer bus.Unsubscribe(sub)

	s := NewStore(bus)
	s.Upsert(model.Instrument{ID: "ripple", Symbol: "XRP", Name: "Ripple", Price: decimal.NewFromInt(21)})

	evt := <-sub
	require.Equal(t, "instrument", evt.Type)

	inst, err := s.GetInstrument("ripple")
	require.NoError(t, err)
	require.Equal(t, "XRP", inst.Symbol)
}

func TestUpsertReplacesExisting(t *testing.T) {
	s := NewStore(nil)
	before := len(s.Instruments())

	inst, _ := s.GetInstrument("bitcoin")
	inst.Price = decimal.NewFromInt(650000)
	s.Upsert(inst)

	require.Len(t, s.Instruments(), before)
	got, _ := s.GetInstrument("bitcoin")
	require.True(t, got.Price.Equal(decimal.NewFromInt(650000)))
}

func TestReplaceInstruments(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()
	defer bus.Unsubscribe(sub)

	s := NewStore(bus)
	s.ReplaceInstruments([]model.Instrument{{ID: "bitcoin", Symbol: "BTC", Price: decimal.NewFromInt(1)}})

	evt := <-sub
	require.Equal(t, "instruments", evt.Type)
	require.Len(t, s.Instruments(), 1)
}
