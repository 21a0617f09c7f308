package position

import (
	"errors"
	"net/http"

	"cryptofx/internal/broker"
	"cryptofx/internal/format"
	"cryptofx/internal/httputil"
	"cryptofx/internal/market"
	"cryptofx/internal/model"
	"cryptofx/internal/types"
	"cryptofx/internal/valuation"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func decimalZeroIfNil(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

type Handler struct {
	store  *Store
	market *market.Store
	broker broker.Adapter
	log    *logrus.Logger
}

func NewHandler(store *Store, marketStore *market.Store, adapter broker.Adapter, log *logrus.Logger) *Handler {
	return &Handler{store: store, market: marketStore, broker: adapter, log: log}
}

type positionView struct {
	model.Position
	Symbol     string `json:"symbol"`
	Name       string `json:"name,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Pips       *int64 `json:"pips,omitempty"`
	PnLDisplay string `json:"pnl_display"`
	PnLPercent string `json:"pnl_percent"`
}

type listResponse struct {
	Items   []positionView    `json:"items"`
	Summary valuation.Summary `json:"summary"`
}

// Spot lists the user's spot positions with display values attached.
func (h *Handler) Spot(w http.ResponseWriter, r *http.Request, userID string) {
	status := types.PositionStatus(r.URL.Query().Get("status"))
	positions := h.store.List(userID, types.MarketKindSpot, status)

	items := make([]positionView, 0, len(positions))
	kept := make([]model.Position, 0, len(positions))
	for _, p := range positions {
		inst, err := h.market.GetInstrument(p.InstrumentID)
		if err != nil {
			// A stale position must never take the view down.
			h.log.WithFields(logrus.Fields{
				"position_id":   p.ID,
				"instrument_id": p.InstrumentID,
			}).Warn("skipping position with unknown instrument")
			continue
		}
		kept = append(kept, p)
		// Spot positions have no margin; PnL% is taken against notional
		// at entry.
		pct, pctErr := valuation.PnLPercent(p.PnL, p.EntryPrice.Mul(p.Size))
		items = append(items, positionView{
			Position:   p,
			Symbol:     inst.Symbol,
			Name:       inst.Name,
			Icon:       inst.Icon,
			PnLDisplay: format.Currency(p.PnL, "USD"),
			PnLPercent: format.PercentOrDash(pct, pctErr),
		})
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Items: items, Summary: valuation.Summarize(kept)})
}

// Forex lists forex positions, with pip distance and margin-relative
// PnL%.
func (h *Handler) Forex(w http.ResponseWriter, r *http.Request, userID string) {
	status := types.PositionStatus(r.URL.Query().Get("status"))
	positions := h.store.List(userID, types.MarketKindForex, status)

	items := make([]positionView, 0, len(positions))
	for _, p := range positions {
		pips := valuation.PipDistance(p.EntryPrice, p.CurrentPrice, p.Direction)
		margin := decimalZeroIfNil(p.Margin)
		pct, pctErr := valuation.PnLPercent(p.PnL, margin)
		items = append(items, positionView{
			Position:   p,
			Symbol:     p.InstrumentID,
			Pips:       &pips,
			PnLDisplay: format.Currency(p.PnL, "USD"),
			PnLPercent: format.PercentOrDash(pct, pctErr),
		})
	}
	httputil.WriteJSON(w, http.StatusOK, listResponse{Items: items, Summary: valuation.Summarize(positions)})
}

// Summary serves the dashboard strip over every open position.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request, userID string) {
	all := append(
		h.store.List(userID, types.MarketKindSpot, types.PositionStatusOpen),
		h.store.List(userID, types.MarketKindForex, types.PositionStatusOpen)...,
	)
	httputil.WriteJSON(w, http.StatusOK, valuation.Summarize(all))
}

// Close resolves the position, hands it to the execution adapter and
// marks it closed on success.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request, userID, positionID string) {
	p, err := h.store.Get(positionID)
	if err != nil {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "position not found"})
		return
	}
	if p.UserID != userID {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "position not found"})
		return
	}
	if err := h.broker.ClosePosition(r.Context(), p.ID); err != nil {
		httputil.WriteJSON(w, http.StatusBadGateway, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	closed, err := h.store.MarkClosed(positionID)
	if err != nil {
		if errors.Is(err, ErrAlreadyClosed) {
			httputil.WriteJSON(w, http.StatusConflict, httputil.ErrorResponse{Error: "position already closed"})
			return
		}
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "position not found"})
		return
	}
	h.log.WithFields(logrus.Fields{"position_id": closed.ID, "user_id": userID}).Info("position closed")
	httputil.WriteJSON(w, http.StatusOK, closed)
}
