package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the lifecycle state of an order.
type OrderStatus string

var (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderExpired   OrderStatus = "expired"
	OrderCancelled OrderStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s != OrderPending
}

// Order is a merchant-initiated request to receive a stablecoin amount.
type Order struct {
	OrderID            uuid.UUID
	MerchantOrderID    string
	Amount             decimal.Decimal
	CreatedAt          time.Time
	Status             OrderStatus
	WebhookURL         string
	WebhookRetryCount  int32
	WebhookLastTriedAt *time.Time
	WebhookSuccessAt   *time.Time
}
