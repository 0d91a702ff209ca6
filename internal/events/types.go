// Package events provides the in-process broker connecting the pipeline
// components.
//
// Events are idempotent and ephemeral: they carry only the identifiers a
// receiver needs to re-read authoritative state from the database, so a
// dropped or replayed event recomputes the same outcome.
package events

import (
	"github.com/google/uuid"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// DepositChangeKind distinguishes deposit creation from removal.
type DepositChangeKind string

var (
	DepositCreated DepositChangeKind = "created"
	DepositRemoved DepositChangeKind = "removed"
)

// PendingDepositChanged fires when a pending deposit is created or removed.
// The PoolingManager recomputes the poll period of the affected pair.
type PendingDepositChanged struct {
	OrderID uuid.UUID
	Network model.Network
	Token   model.Token
	Kind    DepositChangeKind
}

// PoolingTick triggers one explorer sync for a (network, token) pair.
type PoolingTick struct {
	Network model.Network
	Token   model.Token
}

// MatchTick fires after a sync tick commits. InsertedTransferIDs holds the
// rows the tick inserted plus the rows its confirmation pass moved to
// waiting_for_match. The watcher only considers the transfers named here, so
// an empty slice leads to no match pass.
type MatchTick struct {
	Network             model.Network
	Token               model.Token
	InsertedTransferIDs []int64
}
