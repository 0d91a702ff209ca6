package model

import "github.com/google/uuid"

// Fulfillment is the atomic binding of one transfer to one deposit that
// moves the parent order to paid.
type Fulfillment struct {
	Network    Network
	TransferID int64
	DepositID  int64
	OrderID    uuid.UUID
}

// ExpiredOrder pairs an order expired by the sweep with the deposits removed
// alongside it.
type ExpiredOrder struct {
	Order   Order
	Removed []PendingDeposit
}
