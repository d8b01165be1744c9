package di

import (
	"context"
	"math/rand/v2"
	"time"

	"resort/config"
	"resort/internal/offline/client"
	"resort/internal/offline/connectivity"
	"resort/internal/offline/store"
	"resort/internal/offline/syncer"
	"resort/shared/bookingref"
	"resort/transport/http/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// provideHTTPMetrics registers server metrics on the default registry served at /metrics.
func provideHTTPMetrics() *middleware.HTTPMetrics {
	return middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)
}

type systemRandom struct{}

func (systemRandom) IntN(n int) int { return rand.IntN(n) }

func provideRandom() bookingref.Random {
	return systemRandom{}
}

func provideClock() func() time.Time {
	return time.Now
}

func provideStore(cfg *config.Config) (*store.Store, func(), error) {
	st, err := store.Open(context.Background(), cfg.Agent.StorePath)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close local store")
		}
	}

	return st, cleanup, nil
}

func provideNotifier(cfg *config.Config, c client.Client) *connectivity.Notifier {
	return connectivity.New(
		c,
		time.Duration(cfg.Agent.ProbeIntervalSeconds)*time.Second,
		time.Duration(cfg.Agent.RequestTimeoutSeconds)*time.Second,
	)
}

func provideWorker(
	cfg *config.Config,
	coordinator *syncer.Coordinator,
	registrations syncer.Registrations,
	notifier *connectivity.Notifier,
) *syncer.Worker {
	return syncer.NewWorker(coordinator, registrations, notifier, time.Duration(cfg.Agent.SyncIntervalSeconds)*time.Second)
}
