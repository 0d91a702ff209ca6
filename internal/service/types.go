// Package service implements the long-lived pipeline components: the
// adaptive scheduler, the per-pair blockchain sync, the order matcher and
// the webhook sender.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/config"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/explorer"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// DepositCounter reports the active watch-slot count per pair.
	DepositCounter interface {
		CountPendingDeposits(ctx context.Context, pair model.Pair) (int64, error)
	}

	// TransferStore is the persistence surface of BlockchainSync.
	TransferStore interface {
		SyncCursor(ctx context.Context, pair model.Pair) (*model.SyncCursor, error)
		InsertTransfers(ctx context.Context, inserts []model.TransferInsert) ([]int64, error)
		UnconfirmedTransfers(ctx context.Context, pair model.Pair, window time.Duration) ([]model.Transfer, error)
		MarkTransfersConfirmed(ctx context.Context, network model.Network, ids []int64) error
		MarkTransfersFailedToConfirm(ctx context.Context, network model.Network, ids []int64) error
		TouchDepositsScanned(ctx context.Context, pair model.Pair) error
	}

	// MatchStore is the persistence surface of the OrderWatcher.
	MatchStore interface {
		PendingDepositsForMatching(ctx context.Context, pair model.Pair) ([]model.PendingDeposit, error)
		TransfersWaitingForMatch(ctx context.Context, network model.Network, ids []int64) ([]model.Transfer, error)
		FulfillMatch(ctx context.Context, f model.Fulfillment) ([]model.PendingDeposit, error)
		MarkTransfersNoMatchedDeposit(ctx context.Context, network model.Network, ids []int64) error
		EnqueueUnknownPaymentWebhook(ctx context.Context, transferID int64) error
		ExpireOrders(ctx context.Context, ttl time.Duration) ([]model.ExpiredOrder, error)
	}

	// OutboxStore is the persistence surface of the WebhookSender.
	OutboxStore interface {
		DueWebhooks(ctx context.Context, limit int) ([]model.WebhookOutboxRow, error)
		MarkWebhookDelivered(ctx context.Context, id int64, payloadHash string) error
		MarkWebhookFailed(ctx context.Context, id int64, lastError string, nextAttempt time.Time, dead bool) error
		GetOrder(ctx context.Context, orderID uuid.UUID) (model.Order, error)
		IncrementOrderWebhookRetry(ctx context.Context, orderID uuid.UUID) error
		MarkOrderWebhookSuccess(ctx context.Context, orderID uuid.UUID) error
	}

	// Explorer is the outbound adapter a sync instance queries.
	Explorer interface {
		FetchTransfersSince(ctx context.Context, token model.Token, wallets []string, cursor int64, limit int) ([]explorer.TransferRecord, error)
		Confirmations(ctx context.Context, txnHash string) (int64, error)
		TransactionPosition(ctx context.Context, txnHash string) (int64, error)
	}

	// ConfigSource yields the current config snapshot and reload signals.
	ConfigSource interface {
		Current() *config.Snapshot
		Watch() <-chan struct{}
	}

	// PoolingMetrics records scheduler observations.
	PoolingMetrics interface {
		ObservePeriod(pair model.Pair, period time.Duration)
		ObserveSuspended(pair model.Pair)
		ObserveTick(pair model.Pair)
	}

	// SyncMetrics records sync tick observations.
	SyncMetrics interface {
		ObserveTick(err error, inserted int, started time.Time)
		ObserveCoalesced()
		ObserveConfirmed(n int)
		ObserveFailedToConfirm(n int)
	}

	// WatcherMetrics records match pass observations.
	WatcherMetrics interface {
		ObserveMatchPass(network, token string, err error, matched, unmatched int, started time.Time)
		ObserveExpired(n int)
	}

	// WebhookMetrics records delivery observations.
	WebhookMetrics interface {
		ObserveDelivery(kind string, err error, started time.Time)
		ObserveDead()
		ObserveBatch(size int)
	}
)
