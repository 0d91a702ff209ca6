package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "explorer",
		Name:      "operations_total",
		Help:      "Count of explorer API operations.",
	}, []string{"operation", "network", "status"})

	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ocrch",
		Subsystem: "explorer",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// Explorer tracks metrics for one explorer adapter.
type Explorer struct {
	network model.Network
}

// NewExplorer constructs an Explorer metrics recorder.
func NewExplorer(network model.Network) *Explorer {
	return &Explorer{network: network}
}

// Observe records one explorer call outcome and duration.
func (m Explorer) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	explorerRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	explorerRequestDuration.WithLabelValues(operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
