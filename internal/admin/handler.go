// Package admin serves the back-office panel: operator login, the
// overview counters, user and pending-transaction listings, transaction
// settlement and the add-coin form.
package admin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cryptofx/internal/format"
	"cryptofx/internal/httputil"
	"cryptofx/internal/market"
	"cryptofx/internal/model"
	"cryptofx/internal/wallet"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Handler struct {
	wallet       *wallet.Service
	market       *market.Store
	jwtSecret    []byte
	passwordHash string
	log          *logrus.Logger
}

func NewHandler(walletSvc *wallet.Service, marketStore *market.Store, jwtSecret, passwordHash string, log *logrus.Logger) *Handler {
	return &Handler{
		wallet:       walletSvc,
		market:       marketStore,
		jwtSecret:    []byte(jwtSecret),
		passwordHash: passwordHash,
		log:          log,
	}
}

// Login checks the operator password against the configured bcrypt hash
// and issues a 24h admin token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid request"})
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      req.Username,
		"username": req.Username,
		"role":     "admin",
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	tokenStr, err := token.SignedString(h.jwtSecret)
	if err != nil {
		httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: "token generation failed"})
		return
	}
	h.log.WithFields(logrus.Fields{"username": req.Username}).Info("admin login")
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"token":    tokenStr,
		"username": req.Username,
	})
}

// Me returns the operator identity carried by the token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(adminUsernameKey).(string)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"username": username,
		"role":     "admin",
	})
}

type statsResponse struct {
	model.AdminStats
	TotalVolumeDisplay string `json:"total_volume_display"`
}

// Stats serves the overview counters. They are platform-wide snapshots,
// not derived from the per-user collections.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := seedStats()
	httputil.WriteJSON(w, http.StatusOK, statsResponse{
		AdminStats:         stats,
		TotalVolumeDisplay: format.Compact(stats.TotalVolume),
	})
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	rows := seedUserRows()
	status := r.URL.Query().Get("status")
	if status != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Status == status {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"items": rows})
}

func (h *Handler) PendingTransactions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"items": h.wallet.Pending()})
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.wallet.Approve)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, h.wallet.Reject)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request, fn func(string) (model.Transaction, error)) {
	id := chi.URLParam(r, "id")
	txn, err := fn(id)
	if err != nil {
		if errors.Is(err, wallet.ErrNotPending) {
			httputil.WriteJSON(w, http.StatusConflict, httputil.ErrorResponse{Error: err.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "transaction not found"})
		return
	}
	username, _ := r.Context().Value(adminUsernameKey).(string)
	h.log.WithFields(logrus.Fields{
		"transaction_id": txn.ID,
		"status":         txn.Status,
		"operator":       username,
	}).Info("transaction settled")
	httputil.WriteJSON(w, http.StatusOK, txn)
}

type addCoinRequest struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Icon   string          `json:"icon"`
	Price  decimal.Decimal `json:"price"`
}

// AddInstrument backs the add-coin form. The new coin joins the market
// snapshot immediately and the change goes out on the bus.
func (h *Handler) AddInstrument(w http.ResponseWriter, r *http.Request) {
	var req addCoinRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid request"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	if req.Name == "" || req.Symbol == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "name and symbol are required"})
		return
	}
	if req.Price.IsNegative() {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "price must not be negative"})
		return
	}
	id := req.ID
	if id == "" {
		id = strings.ToLower(strings.ReplaceAll(req.Name, " ", "-"))
	}
	inst := model.Instrument{
		ID:     id,
		Name:   req.Name,
		Symbol: req.Symbol,
		Icon:   req.Icon,
		Price:  req.Price,
	}
	h.market.Upsert(inst)
	h.log.WithFields(logrus.Fields{"instrument_id": inst.ID, "symbol": inst.Symbol}).Info("instrument added")
	httputil.WriteJSON(w, http.StatusCreated, inst)
}
