package invoice

import (
	"net/http"

	"cryptofx/internal/httputil"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type invoiceResponse struct {
	Invoice
	Totals Totals `json:"totals"`
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	inv := Current()
	httputil.WriteJSON(w, http.StatusOK, invoiceResponse{
		Invoice: inv,
		Totals:  inv.Totals(DefaultTaxRate),
	})
}
