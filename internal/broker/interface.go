// Package broker is the execution port. The dashboard never reaches a
// real venue; submissions go through this interface so a live adapter
// can replace the simulation without touching the handlers.
package broker

import (
	"context"

	"cryptofx/internal/types"

	"github.com/shopspring/decimal"
)

type OrderRequest struct {
	ClientOrderID string
	Symbol        string
	Market        types.MarketKind
	Side          types.OrderSide
	Type          types.OrderType
	Price         decimal.Decimal
	Qty           decimal.Decimal
	Leverage      int
}

type OrderResponse struct {
	Reference string
	Status    string
}

type Adapter interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (OrderResponse, error)
	ClosePosition(ctx context.Context, positionID string) error
}
