package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/events"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/explorer"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
	"github.com/haruki-nikaidou/open-crypto-checkout/pkg/workerpool"
)

const (
	// confirmationWindow bounds how far back the confirmation pass looks.
	confirmationWindow = 24 * time.Hour

	// fetchLimit caps one explorer page per tick; the next tick continues
	// from the advanced cursor.
	fetchLimit = 100

	confirmationWorkers = 4
)

// BlockchainSync ingests explorer data for one (network, token) pair. It
// subscribes to PoolingTick filtered to its own pair; ticks arriving while a
// tick is still running are dropped.
type BlockchainSync struct {
	logger   *zap.Logger
	pair     model.Pair
	bus      *events.Bus
	store    TransferStore
	explorer Explorer
	cfg      ConfigSource
	metrics  SyncMetrics

	slot chan struct{}
	wg   sync.WaitGroup
}

// NewBlockchainSync builds a sync instance for one pair.
func NewBlockchainSync(logger *zap.Logger, pair model.Pair, bus *events.Bus, store TransferStore, exp Explorer, cfg ConfigSource, metrics SyncMetrics) (*BlockchainSync, error) {
	if metrics == nil {
		return nil, errors.New("blockchain sync metrics is required")
	}
	return &BlockchainSync{
		logger: logger.Named("blockchainSync").With(
			zap.String("network", string(pair.Network)),
			zap.String("token", string(pair.Token)),
		),
		pair:     pair,
		bus:      bus,
		store:    store,
		explorer: exp,
		cfg:      cfg,
		metrics:  metrics,
		slot:     make(chan struct{}, 1),
	}, nil
}

// Name implements Component.
func (s *BlockchainSync) Name() string {
	return "blockchain_sync:" + s.pair.String()
}

// Run consumes PoolingTick events until the context is canceled. The
// in-flight tick is waited for before returning.
func (s *BlockchainSync) Run(ctx context.Context) error {
	tickCh := s.bus.PoolingTick.Subscribe()
	s.logger.Info("blockchain sync started")

	defer s.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case tick, ok := <-tickCh:
			if !ok {
				return nil
			}
			if tick.Network != s.pair.Network || tick.Token != s.pair.Token {
				continue
			}

			select {
			case s.slot <- struct{}{}:
				s.wg.Add(1)
				go func() {
					defer s.wg.Done()
					defer func() { <-s.slot }()
					s.tick(ctx)
				}()
			default:
				// A tick is still running; coalesce.
				s.metrics.ObserveCoalesced()
			}
		}
	}
}

// tick performs one full sync cycle: cursor read, fetch, persist,
// confirmation pass, MatchTick. A fetch failure leaves the cursor unmoved and
// emits no MatchTick; the next tick retries.
func (s *BlockchainSync) tick(ctx context.Context) {
	started := time.Now()
	snap := s.cfg.Current()

	wallets := snap.WalletAddressesFor(s.pair)
	if len(wallets) == 0 {
		s.logger.Debug("no wallets configured for pair, skipping tick")
		return
	}

	cursor, err := s.store.SyncCursor(ctx, s.pair)
	if err != nil {
		s.metrics.ObserveTick(err, 0, started)
		s.logger.Error("read sync cursor failed", zap.Error(err))
		return
	}

	position, err := s.startPosition(ctx, cursor)
	if err != nil {
		s.metrics.ObserveTick(err, 0, started)
		s.logger.Error("resolve start position failed", zap.Error(err))
		return
	}

	records, err := s.explorer.FetchTransfersSince(ctx, s.pair.Token, wallets, position, fetchLimit)
	if err != nil {
		s.metrics.ObserveTick(err, 0, started)
		s.logger.Warn("explorer fetch failed", zap.Error(err), zap.Int64("cursor", position))
		return
	}

	inserts := make([]model.TransferInsert, 0, len(records))
	for _, rec := range records {
		inserts = append(inserts, model.TransferInsert{
			Token:          rec.Token,
			Network:        rec.Network,
			FromAddress:    lowerIfEVM(rec.Network, rec.FromAddress),
			ToAddress:      lowerIfEVM(rec.Network, rec.ToAddress),
			TxnHash:        rec.TxnHash,
			Value:          rec.Value,
			BlockNumber:    rec.BlockNumber,
			BlockTimestamp: rec.BlockTimestamp,
		})
	}

	ids, err := s.store.InsertTransfers(ctx, inserts)
	if err != nil {
		s.metrics.ObserveTick(err, 0, started)
		s.logger.Error("persist transfers failed", zap.Error(err))
		return
	}

	if err := s.store.TouchDepositsScanned(ctx, s.pair); err != nil {
		s.logger.Warn("touch deposits failed", zap.Error(err))
	}

	// The confirmation pass runs before the MatchTick so transfers that
	// reached their confirmation depth in this tick are named in the
	// payload; a transfer enters waiting_for_match only through this
	// transition.
	confirmed := s.confirmationPass(ctx, cursor, len(ids) > 0)

	s.metrics.ObserveTick(nil, len(ids), started)
	s.logger.Debug("sync tick complete",
		zap.Int("fetched", len(records)),
		zap.Int("inserted", len(ids)),
		zap.Int("confirmed", len(confirmed)))

	// MatchTick is emitted only after the tick's writes committed, so
	// matching always sees the rows it is told about.
	s.bus.MatchTick.Publish(events.MatchTick{
		Network:             s.pair.Network,
		Token:               s.pair.Token,
		InsertedTransferIDs: unionIDs(ids, confirmed),
	})
}

// startPosition resolves where the fetch starts: the stored cursor when one
// exists, otherwise the configured starting transaction, otherwise zero.
func (s *BlockchainSync) startPosition(ctx context.Context, cursor *model.SyncCursor) (int64, error) {
	if cursor != nil {
		return cursor.Position, nil
	}

	snap := s.cfg.Current()
	for _, wallet := range snap.WalletsFor(s.pair) {
		if wallet.StartingTx == "" {
			continue
		}
		position, err := s.explorer.TransactionPosition(ctx, wallet.StartingTx)
		if err != nil {
			return 0, err
		}
		s.logger.Info("anchoring first sync at starting transaction",
			zap.String("txn_hash", wallet.StartingTx),
			zap.Int64("position", position))
		return position, nil
	}
	return 0, nil
}

// confirmationPass re-queries unconfirmed transfers of the last day and
// advances them to waiting_for_match once the chain reports enough
// confirmations, or parks them as failed_to_confirm after the deadline.
// Returns the ids that became waiting_for_match.
func (s *BlockchainSync) confirmationPass(ctx context.Context, cursor *model.SyncCursor, insertedNew bool) []int64 {
	// The cursor view tracks whether any unconfirmed row exists; skip the
	// pass when there is provably nothing to confirm.
	if cursor != nil && !cursor.HasPendingConfirmation && !insertedNew {
		return nil
	}

	snap := s.cfg.Current()
	required := snap.EVMConfirmations
	if s.pair.Network.IsTron() {
		required = snap.TronConfirmations
	}

	unconfirmed, err := s.store.UnconfirmedTransfers(ctx, s.pair, confirmationWindow)
	if err != nil {
		s.logger.Error("load unconfirmed transfers failed", zap.Error(err))
		return nil
	}
	if len(unconfirmed) == 0 {
		return nil
	}

	var mu sync.Mutex
	var confirmed, failed []int64

	err = workerpool.Process(ctx, confirmationWorkers, unconfirmed, func(ctx context.Context, t model.Transfer) error {
		depth, err := s.explorer.Confirmations(ctx, t.TxnHash)
		expired := time.Since(t.CreatedAt) > snap.ConfirmDeadline

		switch {
		case err == nil && depth >= required:
			mu.Lock()
			confirmed = append(confirmed, t.ID)
			mu.Unlock()
		case err != nil && !errors.Is(err, explorer.ErrTxNotFound):
			// Transient explorer failure: leave the row for the next pass.
			s.logger.Warn("confirmation query failed",
				zap.String("txn_hash", t.TxnHash), zap.Error(err))
		case expired:
			mu.Lock()
			failed = append(failed, t.ID)
			mu.Unlock()
		}
		return nil
	}, nil)
	if err != nil {
		s.logger.Error("confirmation pass aborted", zap.Error(err))
		return nil
	}

	if err := s.store.MarkTransfersConfirmed(ctx, s.pair.Network, confirmed); err != nil {
		s.logger.Error("mark transfers confirmed failed", zap.Error(err))
		confirmed = nil
	} else {
		s.metrics.ObserveConfirmed(len(confirmed))
	}
	if err := s.store.MarkTransfersFailedToConfirm(ctx, s.pair.Network, failed); err != nil {
		s.logger.Error("mark transfers failed_to_confirm failed", zap.Error(err))
	} else {
		s.metrics.ObserveFailedToConfirm(len(failed))
	}
	return confirmed
}

// unionIDs merges two id sets preserving first-seen order.
func unionIDs(a, b []int64) []int64 {
	if len(b) == 0 {
		return a
	}
	seen := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, ids := range [][]int64{a, b} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func lowerIfEVM(network model.Network, address string) string {
	if network.IsTron() {
		// Tron base58 addresses are case-sensitive.
		return address
	}
	return strings.ToLower(address)
}
