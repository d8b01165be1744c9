package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics counts served requests by route pattern so path ids do not explode cardinality.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	metrics := &HTTPMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resort",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "resort",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving requests, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registerer.MustRegister(metrics.Requests, metrics.Duration)

	return metrics
}
