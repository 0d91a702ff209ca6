// Package explorer defines the outbound blockchain-explorer contract and its
// shared types. One adapter exists per chain family: etherscan for the EVM
// networks, tronscan for Tron.
package explorer

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// Errors returned by adapters. Callers treat ErrRateLimited like any other
// transient failure: log, keep the cursor, retry next tick.
var (
	ErrTxNotFound  = errors.New("transaction not found")
	ErrRateLimited = errors.New("explorer rate limit exceeded")
)

// TransferRecord is one token movement as reported by an explorer. Value is
// already normalized by the token's decimals.
type TransferRecord struct {
	Token          model.Token
	Network        model.Network
	FromAddress    string
	ToAddress      string
	TxnHash        string
	Value          decimal.Decimal
	BlockNumber    int64
	BlockTimestamp int64
	Index          int64
}

// Client is the pluggable adapter contract.
//
// FetchTransfersSince returns records strictly ordered ascending on the
// cursor field: (block_number, index) for EVM networks, block_timestamp for
// Tron. The wallet filter restricts the query server-side where the API
// allows it; records outside the wallet set may still be returned and are
// stored for the unknown-payment webhook.
type Client interface {
	FetchTransfersSince(ctx context.Context, token model.Token, wallets []string, cursor int64, limit int) ([]TransferRecord, error)
	Confirmations(ctx context.Context, txnHash string) (int64, error)
	// TransactionPosition returns a transaction's cursor position: block
	// number on EVM networks, block timestamp on Tron. Anchors the first
	// sync of a pair that has no stored cursor yet.
	TransactionPosition(ctx context.Context, txnHash string) (int64, error)
}

// Metrics records explorer call outcomes.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// RequestTimeout bounds a single explorer HTTP call; MaxRetries bounds the
// jittered exponential-backoff retry loop around it.
const (
	RequestTimeout = 10 * time.Second
	MaxRetries     = 3
)
