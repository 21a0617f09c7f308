package position

import (
	"testing"

	"cryptofx/internal/types"

	"github.com/stretchr/testify/require"
)

func TestListByMarket(t *testing.T) {
	s := NewStore()
	spot := s.List("1", types.MarketKindSpot, "")
	forex := s.List("1", types.MarketKindForex, "")
	require.Len(t, spot, 3)
	require.Len(t, forex, 3)
	for _, p := range spot {
		require.Nil(t, p.Margin)
	}
	for _, p := range forex {
		require.NotNil(t, p.Margin)
	}
}

func TestListUnknownUser(t *testing.T) {
	s := NewStore()
	require.Empty(t, s.List("nobody", types.MarketKindSpot, ""))
}

func TestMarkClosed(t *testing.T) {
	s := NewStore()
	closed, err := s.MarkClosed("2")
	require.NoError(t, err)
	require.Equal(t, types.PositionStatusClosed, closed.Status)

	open := s.List("1", types.MarketKindSpot, types.PositionStatusOpen)
	require.Len(t, open, 2)

	_, err = s.MarkClosed("2")
	require.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestMarkClosedMissing(t *testing.T) {
	s := NewStore()
	_, err := s.MarkClosed("no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGet(t *testing.T) {
	s := NewStore()
	p, err := s.Get("fx-1")
	require.NoError(t, err)
	require.Equal(t, "EUR/USD", p.InstrumentID)
	require.Equal(t, 50, p.Leverage)
}
