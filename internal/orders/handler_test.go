package orders

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cryptofx/internal/broker"
	"cryptofx/internal/market"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fixedBalance struct{ amount decimal.Decimal }

func (f fixedBalance) Balance(string) (decimal.Decimal, error) {
	return f.amount, nil
}

func newTestHandler(t *testing.T, balance string) *Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHandler(
		market.NewStore(nil),
		fixedBalance{amount: decimal.RequireFromString(balance)},
		broker.NewSimulatedAdapter(log),
		log,
	)
}

func post(t *testing.T, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/v1/orders/preview", bytes.NewReader(raw))
}

func TestPreviewPercentOfBalance(t *testing.T) {
	h := newTestHandler(t, "100000")

	req := map[string]any{
		"instrument_id": "EUR/USD",
		"market":        "forex",
		"side":          "buy",
		"type":          "market",
		"percent":       "10",
		"leverage":      50,
	}
	rec := httptest.NewRecorder()
	h.Preview(rec, post(t, req), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "EUR/USD", resp.Symbol)
	require.Equal(t, "1.0875", resp.Price.String())
	require.Equal(t, "459770.11", resp.Quantity.Round(2).String())
	require.True(t, resp.Fee.IsZero())
	require.Nil(t, resp.StopLoss)
	require.Nil(t, resp.TakeProfit)
}

func TestPreviewLimitWithLevels(t *testing.T) {
	h := newTestHandler(t, "1000000")

	req := map[string]any{
		"instrument_id": "EUR/USD",
		"market":        "forex",
		"side":          "buy",
		"type":          "limit",
		"price":         "1.0850",
		"quantity":      "100000",
		"leverage":      50,
		"stop_loss":     "1.0800",
		"take_profit":   "1.0950",
	}
	rec := httptest.NewRecorder()
	h.Preview(rec, post(t, req), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "108500", resp.Total.String())
	require.Equal(t, "108.5", resp.Fee.String())
	require.Equal(t, "2170", resp.Margin.String())

	require.NotNil(t, resp.StopLoss)
	require.Equal(t, "-500", resp.StopLoss.PnL.String())
	require.Equal(t, int64(-50), resp.StopLoss.Pips)

	require.NotNil(t, resp.TakeProfit)
	require.Equal(t, "1000", resp.TakeProfit.PnL.String())
	require.Equal(t, int64(100), resp.TakeProfit.Pips)
}

func TestPreviewSpotByID(t *testing.T) {
	h := newTestHandler(t, "100000")

	req := map[string]any{
		"instrument_id": "Bitcoin",
		"market":        "spot",
		"side":          "buy",
		"type":          "market",
		"quantity":      "0.5",
		"leverage":      1,
	}
	rec := httptest.NewRecorder()
	h.Preview(rec, post(t, req), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "BTC", resp.Symbol)
	require.Equal(t, "322894.75", resp.Total.String())
	require.Equal(t, "322894.75", resp.Margin.String())
}

func TestPreviewRejectsBadInput(t *testing.T) {
	h := newTestHandler(t, "100000")

	cases := []struct {
		name string
		req  map[string]any
		code int
	}{
		{
			"unknown instrument",
			map[string]any{"instrument_id": "XAU/USD", "market": "forex", "side": "buy", "type": "market", "leverage": 10},
			http.StatusNotFound,
		},
		{
			"zero leverage",
			map[string]any{"instrument_id": "EUR/USD", "market": "forex", "side": "buy", "type": "market", "leverage": 0},
			http.StatusBadRequest,
		},
		{
			"bad side",
			map[string]any{"instrument_id": "EUR/USD", "market": "forex", "side": "hold", "type": "market", "leverage": 10},
			http.StatusBadRequest,
		},
		{
			"percent above 100",
			map[string]any{"instrument_id": "EUR/USD", "market": "forex", "side": "buy", "type": "market", "percent": "150", "leverage": 10},
			http.StatusBadRequest,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Preview(rec, post(t, tc.req), "1")
			require.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestSubmit(t *testing.T) {
	h := newTestHandler(t, "100000")

	req := map[string]any{
		"instrument_id": "EUR/USD",
		"market":        "forex",
		"side":          "sell",
		"type":          "market",
		"quantity":      "10000",
		"leverage":      50,
	}
	rec := httptest.NewRecorder()
	h.Submit(rec, post(t, req), "1")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp submitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Reference)
	require.Equal(t, "accepted", resp.Status)
}

func TestSubmitRejectsOversizedOrder(t *testing.T) {
	h := newTestHandler(t, "1000")

	req := map[string]any{
		"instrument_id": "EUR/USD",
		"market":        "forex",
		"side":          "buy",
		"type":          "market",
		"quantity":      "10000000",
		"leverage":      10,
	}
	rec := httptest.NewRecorder()
	h.Submit(rec, post(t, req), "1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRejectsZeroQuantity(t *testing.T) {
	h := newTestHandler(t, "100000")

	req := map[string]any{
		"instrument_id": "EUR/USD",
		"market":        "forex",
		"side":          "buy",
		"type":          "market",
		"leverage":      10,
	}
	rec := httptest.NewRecorder()
	h.Submit(rec, post(t, req), "1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
