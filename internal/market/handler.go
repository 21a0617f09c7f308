package market

import (
	"net/http"

	"cryptofx/internal/httputil"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Instruments(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"items":            h.store.Instruments(),
		"leverage_options": LeverageOptions,
	})
}

func (h *Handler) ForexPairs(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"items":            h.store.ForexPairs(),
		"leverage_options": LeverageOptions,
	})
}
