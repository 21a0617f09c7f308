package wallet

import (
	"errors"
	"net/http"

	"cryptofx/internal/httputil"
	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type movementRequest struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
}

func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request, userID string) {
	typ := types.TransactionType(r.URL.Query().Get("type"))
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"items": h.svc.Transactions(userID, typ),
	})
}

func (h *Handler) Methods(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"items": Methods()})
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request, userID string) {
	h.movement(w, r, userID, types.TransactionTypeDeposit)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request, userID string) {
	h.movement(w, r, userID, types.TransactionTypeWithdraw)
}

func (h *Handler) movement(w http.ResponseWriter, r *http.Request, userID string, typ types.TransactionType) {
	var req movementRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid amount"})
		return
	}
	var txn any
	var submitErr error
	if typ == types.TransactionTypeDeposit {
		txn, submitErr = h.svc.SubmitDeposit(userID, amount, req.Method)
	} else {
		txn, submitErr = h.svc.SubmitWithdraw(userID, amount, req.Method)
	}
	if submitErr != nil {
		status := http.StatusBadRequest
		if errors.Is(submitErr, ErrPendingExists) {
			status = http.StatusConflict
		}
		httputil.WriteJSON(w, status, httputil.ErrorResponse{Error: submitErr.Error()})
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, txn)
}
