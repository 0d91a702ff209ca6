package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherMatchPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "order_watcher",
		Name:      "match_passes_total",
		Help:      "Count of match passes processed.",
	}, []string{"network", "token", "status"})

	watcherMatchPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ocrch",
		Subsystem: "order_watcher",
		Name:      "match_pass_duration_seconds",
		Help:      "Duration of match passes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "token", "status"})

	watcherFulfillmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "order_watcher",
		Name:      "fulfillments_total",
		Help:      "Count of deposits fulfilled by a transfer.",
	}, []string{"network", "token"})

	watcherUnmatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "order_watcher",
		Name:      "unmatched_transfers_total",
		Help:      "Count of transfers parked as no_matched_deposit.",
	}, []string{"network", "token"})

	watcherExpiredOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "order_watcher",
		Name:      "expired_orders_total",
		Help:      "Count of orders expired by the sweep.",
	})
)

// OrderWatcher tracks metrics for the matching component.
type OrderWatcher struct{}

// NewOrderWatcher constructs an OrderWatcher metrics recorder.
func NewOrderWatcher() *OrderWatcher {
	return &OrderWatcher{}
}

// ObserveMatchPass records one match pass.
func (m OrderWatcher) ObserveMatchPass(network, token string, err error, matched, unmatched int, started time.Time) {
	status := statusOf(err)
	watcherMatchPassesTotal.WithLabelValues(network, token, status).Inc()
	watcherMatchPassDuration.WithLabelValues(network, token, status).
		Observe(time.Since(started).Seconds())
	if matched > 0 {
		watcherFulfillmentsTotal.WithLabelValues(network, token).Add(float64(matched))
	}
	if unmatched > 0 {
		watcherUnmatchedTotal.WithLabelValues(network, token).Add(float64(unmatched))
	}
}

// ObserveExpired counts orders expired by a sweep.
func (m OrderWatcher) ObserveExpired(n int) {
	if n > 0 {
		watcherExpiredOrdersTotal.Add(float64(n))
	}
}
