package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

var (
	syncTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "blockchain_sync",
		Name:      "ticks_total",
		Help:      "Count of sync ticks processed.",
	}, []string{"network", "token", "status"})

	syncTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ocrch",
		Subsystem: "blockchain_sync",
		Name:      "tick_duration_seconds",
		Help:      "Duration of sync ticks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "token", "status"})

	syncInsertedTransfers = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "blockchain_sync",
		Name:      "inserted_transfers_total",
		Help:      "Count of new transfer rows persisted.",
	}, []string{"network", "token"})

	syncCoalescedTicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "blockchain_sync",
		Name:      "coalesced_ticks_total",
		Help:      "Count of ticks dropped because a tick was still running.",
	}, []string{"network", "token"})

	syncConfirmationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "blockchain_sync",
		Name:      "confirmations_total",
		Help:      "Count of transfers leaving the confirmation wait.",
	}, []string{"network", "token", "outcome"})
)

// BlockchainSync tracks metrics for one sync instance.
type BlockchainSync struct {
	pair model.Pair
}

// NewBlockchainSync constructs a BlockchainSync metrics recorder.
func NewBlockchainSync(pair model.Pair) *BlockchainSync {
	return &BlockchainSync{pair: pair}
}

// ObserveTick records one sync tick outcome, duration and insert count.
func (m BlockchainSync) ObserveTick(err error, inserted int, started time.Time) {
	status := statusOf(err)
	syncTicksTotal.WithLabelValues(string(m.pair.Network), string(m.pair.Token), status).Inc()
	syncTickDuration.WithLabelValues(string(m.pair.Network), string(m.pair.Token), status).
		Observe(time.Since(started).Seconds())
	if inserted > 0 {
		syncInsertedTransfers.WithLabelValues(string(m.pair.Network), string(m.pair.Token)).
			Add(float64(inserted))
	}
}

// ObserveCoalesced counts one dropped tick.
func (m BlockchainSync) ObserveCoalesced() {
	syncCoalescedTicks.WithLabelValues(string(m.pair.Network), string(m.pair.Token)).Inc()
}

// ObserveConfirmed counts transfers confirmed on chain.
func (m BlockchainSync) ObserveConfirmed(n int) {
	if n > 0 {
		syncConfirmationsTotal.WithLabelValues(string(m.pair.Network), string(m.pair.Token), "confirmed").
			Add(float64(n))
	}
}

// ObserveFailedToConfirm counts transfers that missed the deadline.
func (m BlockchainSync) ObserveFailedToConfirm(n int) {
	if n > 0 {
		syncConfirmationsTotal.WithLabelValues(string(m.pair.Network), string(m.pair.Token), "failed").
			Add(float64(n))
	}
}
