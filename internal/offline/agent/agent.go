package agent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"resort/config"
	"resort/internal/offline/client"
	"resort/internal/offline/connectivity"
	"resort/internal/offline/queue"
	"resort/internal/offline/refcache"
	"resort/internal/offline/store"
	"resort/internal/offline/submitter"
	"resort/internal/offline/syncer"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// Agent holds the front desk's offline components. Every frontdesk command builds one;
// only the agent command runs it.
type Agent struct {
	Config        *config.Config
	Store         *store.Store
	Queue         queue.Queue
	Client        client.Client
	Notifier      *connectivity.Notifier
	Registrations syncer.Registrations
	Coordinator   *syncer.Coordinator
	Worker        *syncer.Worker
	Submitter     *submitter.Submitter
	Catalog       *refcache.Cache
	Registry      *prometheus.Registry
}

// Run probes connectivity, drains the queue on every trigger and serves metrics until
// ctx is done.
func (a *Agent) Run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	a.Worker.OnOnline(a.warmUp)

	server := &http.Server{
		Addr:              net.JoinHostPort("", a.Config.Agent.MetricsPort),
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The first observation notifies nobody, so the worker's opening drain needs it in place.
	a.Notifier.Probe(ctx)

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		a.Notifier.Run(ctx)
	}()

	go func() {
		defer wg.Done()

		a.Worker.Run(ctx)
	}()

	serveErr := make(chan error, 1)

	go func() {
		log.Info().Str("port", a.Config.Agent.MetricsPort).Msg("Starting up agent metrics server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}

		close(serveErr)
	}()

	var runErr error

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("metrics server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Agent metrics server shutdown did not complete")
	}

	stop()
	wg.Wait()

	return runErr
}

func (a *Agent) routes() http.Handler {
	router := chi.NewRouter()

	router.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}

func (a *Agent) warmUp(ctx context.Context) {
	if err := a.Catalog.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("Reference data warm-up incomplete")

		return
	}

	log.Info().Msg("Reference data refreshed")
}
