package wallet

import (
	"strings"

	"cryptofx/internal/model"

	"github.com/shopspring/decimal"
)

var methodCatalog = []model.PaymentMethod{
	{ID: "papara", Name: "Papara", Icon: "💳", FeeRate: decimal.Zero},
	{ID: "bank", Name: "Banka Havalesi", Icon: "🏦", FeeRate: decimal.RequireFromString("0.005")},
	{ID: "credit", Name: "Kredi Kartı", Icon: "💰", FeeRate: decimal.RequireFromString("0.02")},
}

func Methods() []model.PaymentMethod {
	out := make([]model.PaymentMethod, len(methodCatalog))
	copy(out, methodCatalog)
	return out
}

func methodByID(id string) (model.PaymentMethod, bool) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	for _, m := range methodCatalog {
		if m.ID == normalized {
			return m, true
		}
	}
	return model.PaymentMethod{}, false
}
