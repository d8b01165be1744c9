package syncer

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSynced = "synced"
	OutcomeFailed = "failed"
)

type Metrics struct {
	Replays *prometheus.CounterVec
	Drains  prometheus.Counter
	Pending prometheus.Gauge
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Replays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "sync",
			Name:      "replays_total",
			Help:      "Queued bookings replayed to the server, by outcome.",
		}, []string{"outcome"}),
		Drains: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "sync",
			Name:      "drains_total",
			Help:      "Drains that ran while the server was reachable.",
		}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "frontdesk",
			Subsystem: "sync",
			Name:      "pending_entries",
			Help:      "Pending entries seen at the start of the last drain.",
		}),
	}

	registerer.MustRegister(metrics.Replays, metrics.Drains, metrics.Pending)

	return metrics
}
