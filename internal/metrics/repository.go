package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ocrch",
		Subsystem: "repository",
		Name:      "queries_total",
		Help:      "Count of repository queries.",
	}, []string{"operation", "status"})

	repositoryQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ocrch",
		Subsystem: "repository",
		Name:      "query_duration_seconds",
		Help:      "Duration of repository queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Repository tracks metrics for database queries.
type Repository struct{}

// NewRepository constructs a Repository metrics recorder.
func NewRepository() *Repository {
	return &Repository{}
}

// Observe records one query outcome and duration.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryQueriesTotal.WithLabelValues(operation, status).Inc()
	repositoryQueryDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
