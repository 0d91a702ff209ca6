package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/events"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// idleWait is used when no pair is active, so the loop still wakes up
// periodically.
const idleWait = time.Hour

// pairSchedule is the per-pair timer state. A zero period means the pair is
// suspended.
type pairSchedule struct {
	period   time.Duration
	nextFire time.Time
}

// PoolingManager is the sole subscriber of PendingDepositChanged. It keeps a
// poll period per enabled (network, token) pair and emits PoolingTick at
// that cadence.
//
// Periods are recomputed only on deposit-change events and config reloads;
// a recomputation resets the running timer to the new period.
type PoolingManager struct {
	logger  *zap.Logger
	bus     *events.Bus
	store   DepositCounter
	cfg     ConfigSource
	metrics PoolingMetrics

	schedules map[model.Pair]*pairSchedule
}

// NewPoolingManager builds a PoolingManager.
func NewPoolingManager(logger *zap.Logger, bus *events.Bus, store DepositCounter, cfg ConfigSource, metrics PoolingMetrics) (*PoolingManager, error) {
	if metrics == nil {
		return nil, errors.New("pooling manager metrics is required")
	}
	return &PoolingManager{
		logger:    logger.Named("poolingManager"),
		bus:       bus,
		store:     store,
		cfg:       cfg,
		metrics:   metrics,
		schedules: make(map[model.Pair]*pairSchedule),
	}, nil
}

// Name implements Component.
func (m *PoolingManager) Name() string { return "pooling_manager" }

// Run drives the scheduler until the context is canceled.
func (m *PoolingManager) Run(ctx context.Context) error {
	depositCh := m.bus.PendingDepositChanged.Subscribe()
	reloadCh := m.cfg.Watch()

	m.reconfigure(ctx)
	m.logger.Info("pooling manager started", zap.Int("pairs", len(m.schedules)))

	timer := time.NewTimer(m.untilNext())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-depositCh:
			if !ok {
				return nil
			}
			pair := model.Pair{Network: ev.Network, Token: ev.Token}
			m.recompute(ctx, pair)
			resetTimer(timer, m.untilNext())

		case <-reloadCh:
			m.logger.Info("config reloaded, recomputing schedules")
			m.reconfigure(ctx)
			resetTimer(timer, m.untilNext())

		case <-timer.C:
			m.fireDue()
			timer.Reset(m.untilNext())
		}
	}
}

// reconfigure rebuilds the schedule set from the current snapshot: new pairs
// are activated, pairs no longer enabled are suspended.
func (m *PoolingManager) reconfigure(ctx context.Context) {
	snap := m.cfg.Current()
	enabled := make(map[model.Pair]struct{})
	for _, pair := range snap.EnabledPairs() {
		enabled[pair] = struct{}{}
		m.recompute(ctx, pair)
	}
	for pair := range m.schedules {
		if _, ok := enabled[pair]; !ok {
			delete(m.schedules, pair)
			m.metrics.ObserveSuspended(pair)
			m.logger.Info("pair suspended",
				zap.String("network", string(pair.Network)),
				zap.String("token", string(pair.Token)))
		}
	}
}

// recompute re-reads the deposit count of one pair and resets its timer to
// the freshly computed period.
func (m *PoolingManager) recompute(ctx context.Context, pair model.Pair) {
	snap := m.cfg.Current()
	if !snap.PairEnabled(pair) {
		if _, ok := m.schedules[pair]; ok {
			delete(m.schedules, pair)
			m.metrics.ObserveSuspended(pair)
		}
		return
	}

	count, err := m.store.CountPendingDeposits(ctx, pair)
	if err != nil {
		m.logger.Error("count pending deposits failed",
			zap.String("network", string(pair.Network)),
			zap.String("token", string(pair.Token)),
			zap.Error(err))
		return
	}

	period := poolingPeriod(count, snap.BaseIdle, snap.BaseActive, snap.MinPeriod)
	m.schedules[pair] = &pairSchedule{
		period:   period,
		nextFire: time.Now().Add(period),
	}
	m.metrics.ObservePeriod(pair, period)
	m.logger.Debug("pair period recomputed",
		zap.String("network", string(pair.Network)),
		zap.String("token", string(pair.Token)),
		zap.Int64("pending_deposits", count),
		zap.Duration("period", period))
}

// fireDue publishes a PoolingTick for every pair whose deadline has passed
// and advances it by its unchanged period.
func (m *PoolingManager) fireDue() {
	now := time.Now()
	for pair, s := range m.schedules {
		if s.nextFire.After(now) {
			continue
		}
		m.bus.PoolingTick.Publish(events.PoolingTick{Network: pair.Network, Token: pair.Token})
		m.metrics.ObserveTick(pair)
		s.nextFire = now.Add(s.period)
	}
}

// untilNext returns the wait until the earliest deadline.
func (m *PoolingManager) untilNext() time.Duration {
	next := time.Duration(-1)
	now := time.Now()
	for _, s := range m.schedules {
		d := s.nextFire.Sub(now)
		if d < 0 {
			d = 0
		}
		if next < 0 || d < next {
			next = d
		}
	}
	if next < 0 {
		return idleWait
	}
	return next
}

// poolingPeriod computes the poll period from the active deposit count:
// an idle pair polls at baseIdle so transfers to old wallets still get
// discovered; a loaded pair divides baseActive by ceil(log2(1+n)), floored
// at minPeriod.
func poolingPeriod(pendingDeposits int64, baseIdle, baseActive, minPeriod time.Duration) time.Duration {
	if pendingDeposits <= 0 {
		return baseIdle
	}
	steps := math.Ceil(math.Log2(float64(1 + pendingDeposits)))
	period := time.Duration(float64(baseActive) / steps)
	if period < minPeriod {
		return minPeriod
	}
	return period
}

// resetTimer safely re-arms a timer that may have fired.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
