// Package metrics exposes Prometheus instrumentation for every pipeline
// component.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

var (
	poolingPeriodSeconds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ocrch",
		Subsystem: "pooling_manager",
		Name:      "period_seconds",
		Help:      "Current poll period per pair; 0 while suspended.",
	}, []string{"network", "token"})

	poolingTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "pooling_manager",
		Name:      "ticks_total",
		Help:      "Count of PoolingTick events emitted.",
	}, []string{"network", "token"})
)

// PoolingManager tracks metrics for the adaptive scheduler.
type PoolingManager struct{}

// NewPoolingManager constructs a PoolingManager metrics recorder.
func NewPoolingManager() *PoolingManager {
	return &PoolingManager{}
}

// ObservePeriod records the active poll period of a pair.
func (m PoolingManager) ObservePeriod(pair model.Pair, period time.Duration) {
	poolingPeriodSeconds.WithLabelValues(string(pair.Network), string(pair.Token)).
		Set(period.Seconds())
}

// ObserveSuspended marks a pair as suspended.
func (m PoolingManager) ObserveSuspended(pair model.Pair) {
	poolingPeriodSeconds.WithLabelValues(string(pair.Network), string(pair.Token)).Set(0)
}

// ObserveTick counts one emitted PoolingTick.
func (m PoolingManager) ObserveTick(pair model.Pair) {
	poolingTicksTotal.WithLabelValues(string(pair.Network), string(pair.Token)).Inc()
}
