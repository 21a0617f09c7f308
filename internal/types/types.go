package types

type Direction string

type MarketKind string

type PositionStatus string

type TransactionType string

type TransactionStatus string

type OrderSide string

type OrderType string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

const (
	MarketKindSpot  MarketKind = "spot"
	MarketKindForex MarketKind = "forex"
)

const (
	PositionStatusOpen   PositionStatus = "open"
	PositionStatusClosed PositionStatus = "closed"
)

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeTrade    TransactionType = "trade"
)

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusRejected  TransactionStatus = "rejected"
)

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
	OrderTypeStop   OrderType = "stop"
)

func (d Direction) Valid() bool {
	return d == DirectionLong || d == DirectionShort
}

func (s OrderSide) Valid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

func (t OrderType) Valid() bool {
	return t == OrderTypeMarket || t == OrderTypeLimit || t == OrderTypeStop
}
