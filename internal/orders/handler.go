// Package orders serves the trading panel: the keystroke preview that
// prices an order before submission, and the submit endpoint that hands
// a validated order to the execution adapter.
package orders

import (
	"errors"
	"net/http"
	"strings"

	"cryptofx/internal/broker"
	"cryptofx/internal/format"
	"cryptofx/internal/httputil"
	"cryptofx/internal/market"
	"cryptofx/internal/types"
	"cryptofx/internal/valuation"
	"cryptofx/internal/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var errBadOrder = errors.New("invalid order parameters")

type Handler struct {
	market   *market.Store
	balances wallet.BalanceSource
	broker   broker.Adapter
	log      *logrus.Logger
}

func NewHandler(marketStore *market.Store, balances wallet.BalanceSource, adapter broker.Adapter, log *logrus.Logger) *Handler {
	return &Handler{market: marketStore, balances: balances, broker: adapter, log: log}
}

type orderRequest struct {
	InstrumentID string           `json:"instrument_id"`
	Market       types.MarketKind `json:"market"`
	Side         types.OrderSide  `json:"side"`
	Type         types.OrderType  `json:"type"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	Percent      *decimal.Decimal `json:"percent,omitempty"`
	Leverage     int              `json:"leverage"`
	StopLoss     *decimal.Decimal `json:"stop_loss,omitempty"`
	TakeProfit   *decimal.Decimal `json:"take_profit,omitempty"`
}

type levelPreview struct {
	Level      decimal.Decimal `json:"level"`
	PnL        decimal.Decimal `json:"pnl"`
	PnLDisplay string          `json:"pnl_display"`
	Pips       int64           `json:"pips"`
}

type previewResponse struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Quantity      decimal.Decimal `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	TotalDisplay  string          `json:"total_display"`
	Fee           decimal.Decimal `json:"fee"`
	FeeDisplay    string          `json:"fee_display"`
	Margin        decimal.Decimal `json:"margin"`
	MarginDisplay string          `json:"margin_display"`
	MaxQuantity   decimal.Decimal `json:"max_quantity"`
	StopLoss      *levelPreview   `json:"stop_loss,omitempty"`
	TakeProfit    *levelPreview   `json:"take_profit,omitempty"`
}

type submitResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// resolved carries everything both endpoints need once the request has
// been validated against the current quote and balance.
type resolved struct {
	symbol string
	price  decimal.Decimal
	qty    decimal.Decimal
	maxQty decimal.Decimal
}

func (h *Handler) resolve(req orderRequest, userID string) (resolved, int, error) {
	if !req.Side.Valid() || !req.Type.Valid() {
		return resolved{}, http.StatusBadRequest, errBadOrder
	}
	if req.Leverage <= 0 {
		return resolved{}, http.StatusBadRequest, valuation.ErrZeroLeverage
	}

	var symbol string
	var quote decimal.Decimal
	switch req.Market {
	case types.MarketKindForex:
		pair, err := h.market.GetForexPair(req.InstrumentID)
		if err != nil {
			return resolved{}, http.StatusNotFound, err
		}
		symbol, quote = pair.Symbol, pair.Price
	case types.MarketKindSpot:
		inst, err := h.market.GetInstrument(strings.ToLower(req.InstrumentID))
		if err != nil {
			return resolved{}, http.StatusNotFound, err
		}
		symbol, quote = inst.Symbol, inst.Price
	default:
		return resolved{}, http.StatusBadRequest, errBadOrder
	}

	// Limit and stop orders price at the requested level, market orders
	// at the live quote.
	price := quote
	if req.Type != types.OrderTypeMarket && req.Price != nil {
		price = *req.Price
	}
	if !price.IsPositive() {
		return resolved{}, http.StatusBadRequest, valuation.ErrZeroPrice
	}

	balance, err := h.balances.Balance(userID)
	if err != nil {
		return resolved{}, http.StatusNotFound, err
	}
	maxQty, err := valuation.MaxQuantity(balance, req.Leverage, price)
	if err != nil {
		return resolved{}, http.StatusBadRequest, err
	}

	var qty decimal.Decimal
	switch {
	case req.Quantity != nil:
		qty = *req.Quantity
	case req.Percent != nil:
		qty, err = valuation.QuantityFromPercent(balance, req.Leverage, price, *req.Percent)
		if err != nil {
			return resolved{}, http.StatusBadRequest, err
		}
	}
	if qty.IsNegative() {
		return resolved{}, http.StatusBadRequest, errBadOrder
	}
	return resolved{symbol: symbol, price: price, qty: qty, maxQty: maxQty}, 0, nil
}

// Preview recomputes the panel figures for the current form state. It
// never mutates anything; the frontend calls it on every change.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request, userID string) {
	var req orderRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	res, code, err := h.resolve(req, userID)
	if err != nil {
		httputil.WriteJSON(w, code, httputil.ErrorResponse{Error: err.Error()})
		return
	}

	total := res.qty.Mul(res.price)
	fee := decimal.Zero
	if req.Type != types.OrderTypeMarket {
		fee = valuation.Fee(total, valuation.DefaultOrderFeeRate)
	}
	margin, err := valuation.Margin(res.qty, res.price, req.Leverage)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: err.Error()})
		return
	}

	dir := types.DirectionLong
	if req.Side == types.OrderSideSell {
		dir = types.DirectionShort
	}
	resp := previewResponse{
		Symbol:        res.symbol,
		Price:         res.price,
		Quantity:      res.qty,
		Total:         total,
		TotalDisplay:  format.Currency(total, "USD"),
		Fee:           fee,
		FeeDisplay:    format.Currency(fee, "USD"),
		Margin:        margin,
		MarginDisplay: format.Currency(margin, "USD"),
		MaxQuantity:   res.maxQty,
		StopLoss:      previewLevel(res.price, req.StopLoss, res.qty, dir),
		TakeProfit:    previewLevel(res.price, req.TakeProfit, res.qty, dir),
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func previewLevel(price decimal.Decimal, level *decimal.Decimal, qty decimal.Decimal, dir types.Direction) *levelPreview {
	if level == nil {
		return nil
	}
	pnl := valuation.PotentialPnL(price, *level, qty, dir)
	return &levelPreview{
		Level:      *level,
		PnL:        pnl,
		PnLDisplay: format.Currency(pnl, "USD"),
		Pips:       valuation.PipDistance(price, *level, dir),
	}
}

// Submit validates the order and hands it to the execution adapter. The
// response acknowledges receipt; there are no fills.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, userID string) {
	var req orderRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	res, code, err := h.resolve(req, userID)
	if err != nil {
		httputil.WriteJSON(w, code, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	if !res.qty.IsPositive() {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "quantity must be positive"})
		return
	}
	if res.qty.GreaterThan(res.maxQty) {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "quantity exceeds available balance"})
		return
	}

	order := broker.OrderRequest{
		ClientOrderID: uuid.NewString(),
		Symbol:        res.symbol,
		Market:        req.Market,
		Side:          req.Side,
		Type:          req.Type,
		Price:         res.price,
		Qty:           res.qty,
		Leverage:      req.Leverage,
	}
	ack, err := h.broker.PlaceOrder(r.Context(), order)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadGateway, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	h.log.WithFields(logrus.Fields{
		"user_id":   userID,
		"symbol":    res.symbol,
		"side":      req.Side,
		"type":      req.Type,
		"reference": ack.Reference,
	}).Info("order submitted")
	httputil.WriteJSON(w, http.StatusAccepted, submitResponse{Reference: ack.Reference, Status: ack.Status})
}
