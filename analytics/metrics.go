package analytics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lacrime",
			Name:      "analytics_query_duration_seconds",
			Help:      "Analytics aggregation duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"query"},
	)

	queryErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lacrime",
			Name:      "analytics_query_errors_total",
			Help:      "Total number of failed analytics aggregations",
		},
		[]string{"query"},
	)
)

func init() {
	prometheus.MustRegister(queryDuration)
	prometheus.MustRegister(queryErrorsTotal)
}

func observe(query string, start time.Time, err error) {
	queryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err != nil {
		queryErrorsTotal.WithLabelValues(query).Inc()
	}
}
