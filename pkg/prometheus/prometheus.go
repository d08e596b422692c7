package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Count of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "Time taken to handle HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)
	StoreFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_store_failures_total",
			Help: "Count of requests that failed on the document store",
		},
		[]string{"route"},
	)

	initOnce sync.Once
)

// Init registers the collectors with the default registry. Servers are built
// more than once in tests, so repeated calls are no-ops.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			StoreFailures,
		)
	})
}
