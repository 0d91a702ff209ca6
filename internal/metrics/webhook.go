package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "webhook_sender",
		Name:      "deliveries_total",
		Help:      "Count of webhook delivery attempts.",
	}, []string{"kind", "status"})

	webhookDeliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ocrch",
		Subsystem: "webhook_sender",
		Name:      "delivery_duration_seconds",
		Help:      "Duration of webhook delivery attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	webhookDeadTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "webhook_sender",
		Name:      "dead_total",
		Help:      "Count of webhook events that exhausted their retries.",
	})

	webhookBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ocrch",
		Subsystem: "webhook_sender",
		Name:      "batch_size",
		Help:      "Number of due rows picked up per poll.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})
)

// WebhookSender tracks metrics for webhook delivery.
type WebhookSender struct{}

// NewWebhookSender constructs a WebhookSender metrics recorder.
func NewWebhookSender() *WebhookSender {
	return &WebhookSender{}
}

// ObserveDelivery records one delivery attempt.
func (m WebhookSender) ObserveDelivery(kind string, err error, started time.Time) {
	status := statusOf(err)
	webhookDeliveriesTotal.WithLabelValues(kind, status).Inc()
	webhookDeliveryDuration.WithLabelValues(kind, status).
		Observe(time.Since(started).Seconds())
}

// ObserveDead counts one event moved to the dead state.
func (m WebhookSender) ObserveDead() {
	webhookDeadTotal.Inc()
}

// ObserveBatch records the size of one outbox poll.
func (m WebhookSender) ObserveBatch(size int) {
	webhookBatchSize.Observe(float64(size))
}
