package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus describes where a transfer sits in the reconciliation pipeline.
type TransferStatus string

var (
	TransferWaitingForConfirmation TransferStatus = "waiting_for_confirmation"
	TransferFailedToConfirm        TransferStatus = "failed_to_confirm"
	TransferWaitingForMatch        TransferStatus = "waiting_for_match"
	TransferNoMatchedDeposit       TransferStatus = "no_matched_deposit"
	TransferMatched                TransferStatus = "matched"
)

// Transfer is an on-chain token movement ingested from a blockchain explorer.
// Rows are never deleted.
type Transfer struct {
	ID                  int64
	Token               Token
	Network             Network
	FromAddress         string
	ToAddress           string
	TxnHash             string
	Value               decimal.Decimal
	BlockNumber         int64
	BlockTimestamp      int64
	BlockchainConfirmed bool
	CreatedAt           time.Time
	Status              TransferStatus
	FulfillmentID       *int64
}

// TransferInsert carries the fields of a new transfer row. Inserts are keyed
// on (txn_hash, network); replays are absorbed by the unique index.
type TransferInsert struct {
	Token          Token
	Network        Network
	FromAddress    string
	ToAddress      string
	TxnHash        string
	Value          decimal.Decimal
	BlockNumber    int64
	BlockTimestamp int64
}

// SyncCursor is the per-(network, token) position from which the next
// explorer query starts. Position is a block number for EVM networks and a
// block timestamp for Tron.
type SyncCursor struct {
	Network                Network
	Token                  Token
	Position               int64
	HasPendingConfirmation bool
}
