package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingDeposit is a (wallet, token, network) watch-slot attached to an order.
//
// A deposit lives until a sibling on the same order is fulfilled or the order
// leaves the pending state.
type PendingDeposit struct {
	ID            int64
	OrderID       uuid.UUID
	Token         Token
	Network       Network
	UserAddress   *string
	WalletAddress string
	ExpectedValue decimal.Decimal
	StartedAt     time.Time
	LastScannedAt time.Time
}

// DepositInsert carries the fields of a new watch-slot.
type DepositInsert struct {
	OrderID       uuid.UUID
	Token         Token
	Network       Network
	UserAddress   *string
	WalletAddress string
	ExpectedValue decimal.Decimal
}
