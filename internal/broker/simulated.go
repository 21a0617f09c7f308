package broker

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SimulatedAdapter acknowledges every request without executing
// anything. It is the only adapter this deployment ships with.
type SimulatedAdapter struct {
	log *logrus.Logger
}

func NewSimulatedAdapter(log *logrus.Logger) *SimulatedAdapter {
	return &SimulatedAdapter{log: log}
}

func (a *SimulatedAdapter) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResponse, error) {
	ref := uuid.NewString()
	a.log.WithFields(logrus.Fields{
		"reference": ref,
		"symbol":    req.Symbol,
		"market":    req.Market,
		"side":      req.Side,
		"type":      req.Type,
		"qty":       req.Qty.String(),
	}).Info("simulated order accepted")
	return OrderResponse{Reference: ref, Status: "accepted"}, nil
}

func (a *SimulatedAdapter) ClosePosition(ctx context.Context, positionID string) error {
	a.log.WithFields(logrus.Fields{"position_id": positionID}).Info("simulated close accepted")
	return nil
}
