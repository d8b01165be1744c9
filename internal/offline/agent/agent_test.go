package agent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort/config"
	bookingDto "resort/internal/domains/booking/model/dto"
	"resort/internal/offline/agent"
	"resort/internal/offline/client"
	"resort/internal/offline/connectivity"
	"resort/internal/offline/model"
	"resort/internal/offline/queue"
	"resort/internal/offline/refcache"
	"resort/internal/offline/store"
	"resort/internal/offline/submitter"
	"resort/internal/offline/syncer"
)

type fixedRandom int

func (f fixedRandom) IntN(int) int { return int(f) }

// fakeServer answers the routes the front desk calls.
func fakeServer(t *testing.T, created *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		req := bookingDto.CreateBookingRequest{}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		assert.NotNil(t, req.OfflineID)

		created.Add(1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"data": bookingDto.BookingResponse{
				BookingReference: "VIL-STD-2605-001",
				OfflineID:        req.OfflineID,
				Status:           "pending",
			},
		})
	})

	mux.HandleFunc("/v1/accommodations", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"accommodations": []map[string]any{{"id": "a1", "name": "Garden Villa"}}},
		})
	})

	mux.HandleFunc("/v1/packages", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"packages": []map[string]any{{"id": "p1", "code": "HONEY"}}},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newAgent(t *testing.T, serverURL string) *agent.Agent {
	t.Helper()

	cfg := &config.Config{}
	cfg.Agent.ServerURL = serverURL
	cfg.Agent.CatalogLimit = 10
	cfg.Agent.MetricsPort = "0"

	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "frontdesk.db"))
	require.NoError(t, err)

	t.Cleanup(func() { st.Close() })

	registry := prometheus.NewRegistry()
	c := client.NewWithHTTPClient(cfg, &http.Client{Timeout: time.Second})
	notifier := connectivity.New(c, 20*time.Millisecond, time.Second)
	q := queue.New(st, time.Now, fixedRandom(7))
	registrations := syncer.NewRegistrations(st, time.Now)
	coordinator := syncer.NewCoordinator(q, c, notifier, syncer.NewMetrics(registry))

	return &agent.Agent{
		Config:        cfg,
		Store:         st,
		Queue:         q,
		Client:        c,
		Notifier:      notifier,
		Registrations: registrations,
		Coordinator:   coordinator,
		Worker:        syncer.NewWorker(coordinator, registrations, notifier, 20*time.Millisecond),
		Submitter:     submitter.New(c, q, registrations, notifier),
		Catalog:       refcache.New(c, st, time.Now),
		Registry:      registry,
	}
}

func TestAgent_RunSyncsQueuedBookings(t *testing.T) {
	var created atomic.Int32

	server := fakeServer(t, &created)
	a := newAgent(t, server.URL)

	ctx := context.Background()
	total := 900.0

	entry, err := a.Queue.Enqueue(ctx, model.Draft{
		AccommodationID: "5f0c2f8e-8f8a-4d55-9a55-8a3c2a1b9e01",
		CheckInDate:     "2026-05-01",
		CheckOutDate:    "2026-05-04",
		Guests:          2,
		GuestName:       "Ana Reyes",
		GuestEmail:      "ana@example.com",
		GuestPhone:      "+6281234567",
		TotalAmount:     &total,
	})
	require.NoError(t, err)
	require.NoError(t, a.Registrations.Register(ctx, model.SyncTag))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)

	go func() { done <- a.Run(runCtx) }()

	assert.Eventually(t, func() bool {
		got, err := a.Queue.Get(ctx, entry.OfflineID)

		return err == nil && got.SyncStatus == model.SyncStatusSynced
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("agent did not stop")
	}

	got, err := a.Queue.Get(ctx, entry.OfflineID)
	require.NoError(t, err)
	assert.Equal(t, "VIL-STD-2605-001", got.Reference())
	assert.Equal(t, int32(1), created.Load())

	pending, err := a.Queue.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestAgent_RunDrainsWithoutRegistration(t *testing.T) {
	var created atomic.Int32

	server := fakeServer(t, &created)
	a := newAgent(t, server.URL)

	// Only a registration or a transition would wake it later.
	a.Worker = syncer.NewWorker(a.Coordinator, a.Registrations, a.Notifier, time.Hour)

	ctx := context.Background()

	entry, err := a.Queue.Enqueue(ctx, model.Draft{
		AccommodationID: "5f0c2f8e-8f8a-4d55-9a55-8a3c2a1b9e01",
		CheckInDate:     "2026-05-01",
		CheckOutDate:    "2026-05-02",
		Guests:          1,
		GuestName:       "Ana Reyes",
		GuestEmail:      "ana@example.com",
		GuestPhone:      "+6281234567",
	})
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)

	go func() { done <- a.Run(runCtx) }()

	assert.Eventually(t, func() bool {
		got, err := a.Queue.Get(ctx, entry.OfflineID)

		return err == nil && got.SyncStatus == model.SyncStatusSynced
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("agent did not stop")
	}

	assert.Equal(t, int32(1), created.Load())
}

func TestAgent_CatalogFallsBackToSnapshot(t *testing.T) {
	var created atomic.Int32

	server := fakeServer(t, &created)
	a := newAgent(t, server.URL)

	ctx := context.Background()
	require.True(t, a.Notifier.Probe(ctx))

	require.NoError(t, a.Catalog.Refresh(ctx))

	catalog := a.Catalog.Accommodations(ctx)
	assert.False(t, catalog.Stale)
	require.Len(t, catalog.Items, 1)
	assert.Equal(t, "Garden Villa", catalog.Items[0].Name)

	server.Close()

	assert.False(t, a.Notifier.Probe(ctx))

	catalog = a.Catalog.Accommodations(ctx)
	assert.True(t, catalog.Stale)
	require.Len(t, catalog.Items, 1)

	packages := a.Catalog.Packages(ctx)
	assert.True(t, packages.Stale)
	assert.Len(t, packages.Items, 1)
}
