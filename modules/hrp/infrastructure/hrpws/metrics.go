package hrpws

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	fetchTotal   *prometheus.CounterVec
	retryTotal   *prometheus.CounterVec
	fetchLatency *prometheus.HistogramVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		fetchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: ServiceName,
			Name:      "fetch_total",
			Help:      "Total number of HRP resource fetches.",
		}, []string{"mode", "status"}),
		retryTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: ServiceName,
			Name:      "fetch_retry_total",
			Help:      "Total number of retried HRP fetch attempts.",
		}, []string{"reason"}),
		fetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ServiceName,
			Name:      "fetch_latency_seconds",
			Help:      "Latency distribution for HRP resource fetches.",
			Buckets: []float64{
				0.005, 0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5, 10, 30,
			},
		}, []string{"mode"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}
