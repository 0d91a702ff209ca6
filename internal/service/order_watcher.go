package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/config"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/events"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// OrderWatcher is the sole subscriber of MatchTick. It binds incoming
// transfers to pending deposits and runs the order expiry sweep.
//
// Match passes for the same pair are serialized by a per-pair mutex;
// different pairs proceed in parallel.
type OrderWatcher struct {
	logger  *zap.Logger
	bus     *events.Bus
	store   MatchStore
	cfg     ConfigSource
	metrics WatcherMetrics

	mu      sync.Mutex
	pairMus map[model.Pair]*sync.Mutex
	wg      sync.WaitGroup
}

// NewOrderWatcher builds the matcher.
func NewOrderWatcher(logger *zap.Logger, bus *events.Bus, store MatchStore, cfg ConfigSource, metrics WatcherMetrics) (*OrderWatcher, error) {
	if metrics == nil {
		return nil, errors.New("order watcher metrics is required")
	}
	return &OrderWatcher{
		logger:  logger.Named("orderWatcher"),
		bus:     bus,
		store:   store,
		cfg:     cfg,
		metrics: metrics,
		pairMus: make(map[model.Pair]*sync.Mutex),
	}, nil
}

// Name implements Component.
func (w *OrderWatcher) Name() string { return "order_watcher" }

// Run consumes MatchTick events and drives the expiry sweep until the
// context is canceled. In-flight passes are waited for before returning.
func (w *OrderWatcher) Run(ctx context.Context) error {
	matchCh := w.bus.MatchTick.Subscribe()
	w.logger.Info("order watcher started")

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		w.expiryLoop(ctx)
	}()

	defer func() {
		w.wg.Wait()
		<-sweepDone
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case tick, ok := <-matchCh:
			if !ok {
				return nil
			}
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				w.handleTick(ctx, tick)
			}()
		}
	}
}

func (w *OrderWatcher) pairMutex(pair model.Pair) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	mu, ok := w.pairMus[pair]
	if !ok {
		mu = &sync.Mutex{}
		w.pairMus[pair] = mu
	}
	return mu
}

// handleTick runs one match pass over the transfers named by the event.
func (w *OrderWatcher) handleTick(ctx context.Context, tick events.MatchTick) {
	pair := model.Pair{Network: tick.Network, Token: tick.Token}
	mu := w.pairMutex(pair)
	mu.Lock()
	defer mu.Unlock()

	started := time.Now()
	matched, unmatched, err := w.matchPass(ctx, pair, tick.InsertedTransferIDs)
	w.metrics.ObserveMatchPass(string(pair.Network), string(pair.Token), err, matched, unmatched, started)
	if err != nil {
		w.logger.Error("match pass failed",
			zap.String("network", string(pair.Network)),
			zap.String("token", string(pair.Token)),
			zap.Error(err))
	}
}

func (w *OrderWatcher) matchPass(ctx context.Context, pair model.Pair, transferIDs []int64) (matched, unmatched int, err error) {
	if len(transferIDs) == 0 {
		return 0, 0, nil
	}

	snap := w.cfg.Current()

	transfers, err := w.store.TransfersWaitingForMatch(ctx, pair.Network, transferIDs)
	if err != nil {
		return 0, 0, err
	}
	if len(transfers) == 0 {
		return 0, 0, nil
	}

	deposits, err := w.store.PendingDepositsForMatching(ctx, pair)
	if err != nil {
		return 0, 0, err
	}

	results := computeMatches(transfers, deposits, snap.OrderTTL)

	fulfilled := make(map[int64]struct{}, len(results))
	for _, res := range results {
		removed, fulfillErr := w.store.FulfillMatch(ctx, model.Fulfillment{
			Network:    pair.Network,
			TransferID: res.transferID,
			DepositID:  res.depositID,
			OrderID:    res.orderID,
		})
		if fulfillErr != nil {
			// A concurrent pass may have consumed the deposit or paid the
			// order; the transfer is not in fulfilled, so parkUnmatched
			// below treats it like any other unmatched transfer.
			w.logger.Warn("fulfillment aborted",
				zap.Int64("transfer_id", res.transferID),
				zap.Int64("deposit_id", res.depositID),
				zap.String("order_id", res.orderID.String()),
				zap.Error(fulfillErr))
			continue
		}
		matched++
		fulfilled[res.transferID] = struct{}{}
		w.logger.Info("transfer matched",
			zap.Int64("transfer_id", res.transferID),
			zap.Int64("deposit_id", res.depositID),
			zap.String("order_id", res.orderID.String()))
		w.publishRemoved(removed)
	}

	unmatched, err = w.parkUnmatched(ctx, pair, transfers, fulfilled, snap.Merchant.UnknownPaymentWebhookURL != "", snap)
	return matched, unmatched, err
}

// parkUnmatched finalizes transfers that found no deposit. Known-wallet
// transfers become no_matched_deposit; transfers to addresses outside the
// wallet set keep their status but still raise the unknown-payment webhook
// when one is configured.
func (w *OrderWatcher) parkUnmatched(ctx context.Context, pair model.Pair, transfers []model.Transfer, fulfilled map[int64]struct{}, notify bool, snap *config.Snapshot) (int, error) {
	var known []int64
	var unknownPayments []int64

	for _, t := range transfers {
		if _, ok := fulfilled[t.ID]; ok {
			continue
		}
		if snap.IsKnownWallet(pair.Network, t.ToAddress) {
			known = append(known, t.ID)
			unknownPayments = append(unknownPayments, t.ID)
		} else if notify {
			unknownPayments = append(unknownPayments, t.ID)
		}
	}

	if err := w.store.MarkTransfersNoMatchedDeposit(ctx, pair.Network, known); err != nil {
		return 0, err
	}
	if notify {
		for _, id := range unknownPayments {
			if err := w.store.EnqueueUnknownPaymentWebhook(ctx, id); err != nil {
				w.logger.Warn("enqueue unknown payment webhook failed",
					zap.Int64("transfer_id", id), zap.Error(err))
			}
		}
	}
	return len(known), nil
}

func (w *OrderWatcher) publishRemoved(removed []model.PendingDeposit) {
	for _, d := range removed {
		w.bus.PendingDepositChanged.Publish(events.PendingDepositChanged{
			OrderID: d.OrderID,
			Network: d.Network,
			Token:   d.Token,
			Kind:    events.DepositRemoved,
		})
	}
}

// expiryLoop periodically expires orders whose TTL has passed.
func (w *OrderWatcher) expiryLoop(ctx context.Context) {
	snap := w.cfg.Current()
	ticker := time.NewTicker(snap.ExpirySweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweepExpired(ctx)
		}
	}
}

func (w *OrderWatcher) sweepExpired(ctx context.Context) {
	snap := w.cfg.Current()
	expired, err := w.store.ExpireOrders(ctx, snap.OrderTTL)
	if err != nil {
		w.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	w.metrics.ObserveExpired(len(expired))
	for _, e := range expired {
		w.logger.Info("order expired",
			zap.String("order_id", e.Order.OrderID.String()),
			zap.Int("deposits_removed", len(e.Removed)))
		w.publishRemoved(e.Removed)
	}
}

// matchResult is one in-memory computed binding.
type matchResult struct {
	transferID int64
	depositID  int64
	orderID    uuid.UUID
}

// computeMatches pairs transfers with deposits in memory.
//
// Transfers are visited in cursor order (the store returns them that way),
// deposits in (started_at, id) order, so the tie-breaks fall out of the
// iteration: the earliest transfer wins a contested deposit and the earliest
// deposit wins a contested transfer. Consuming a deposit consumes its whole
// order, since fulfillment deletes every sibling.
func computeMatches(transfers []model.Transfer, deposits []model.PendingDeposit, orderTTL time.Duration) []matchResult {
	consumedDeposits := make(map[int64]struct{})
	consumedOrders := make(map[uuid.UUID]struct{})
	var results []matchResult

	for _, t := range transfers {
		for _, d := range deposits {
			if _, ok := consumedDeposits[d.ID]; ok {
				continue
			}
			if _, ok := consumedOrders[d.OrderID]; ok {
				continue
			}
			if !transferMatchesDeposit(t, d, orderTTL) {
				continue
			}
			consumedDeposits[d.ID] = struct{}{}
			consumedOrders[d.OrderID] = struct{}{}
			results = append(results, matchResult{
				transferID: t.ID,
				depositID:  d.ID,
				orderID:    d.OrderID,
			})
			break
		}
	}
	return results
}

// transferMatchesDeposit applies the matching rules: same wallet, same pair,
// overpay accepted, block timestamp within [started_at, started_at+ttl),
// and the sender restriction when the deposit pinned one.
func transferMatchesDeposit(t model.Transfer, d model.PendingDeposit, orderTTL time.Duration) bool {
	if !strings.EqualFold(t.ToAddress, d.WalletAddress) {
		return false
	}
	if t.Token != d.Token || t.Network != d.Network {
		return false
	}
	if t.Value.LessThan(d.ExpectedValue) {
		return false
	}
	windowStart := d.StartedAt.Unix()
	windowEnd := d.StartedAt.Add(orderTTL).Unix()
	if t.BlockTimestamp < windowStart || t.BlockTimestamp >= windowEnd {
		return false
	}
	if d.UserAddress != nil && !strings.EqualFold(t.FromAddress, *d.UserAddress) {
		return false
	}
	return true
}
