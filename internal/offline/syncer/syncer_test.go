package syncer_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookingDto "resort/internal/domains/booking/model/dto"
	"resort/internal/offline/client"
	clientMocks "resort/internal/offline/client/mocks"
	"resort/internal/offline/model"
	"resort/internal/offline/queue"
	queueMocks "resort/internal/offline/queue/mocks"
	"resort/internal/offline/store"
	"resort/internal/offline/syncer"
)

type fixedRandom int

func (f fixedRandom) IntN(int) int { return int(f) }

type switchable struct {
	online atomic.Bool
}

func (s *switchable) Online() bool { return s.online.Load() }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Second)

	return c.now
}

type fixture struct {
	store   *store.Store
	queue   queue.Queue
	client  *clientMocks.MockClient
	conn    *switchable
	metrics *syncer.Metrics
	clock   *clock
}

func setup(t *testing.T) *fixture {
	t.Helper()

	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "frontdesk.db"))
	require.NoError(t, err)

	t.Cleanup(func() { st.Close() })

	c := &clock{now: time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC)}
	conn := &switchable{}
	conn.online.Store(true)

	return &fixture{
		store:   st,
		queue:   queue.New(st, c.Now, fixedRandom(1)),
		client:  clientMocks.NewMockClient(gomock.NewController(t)),
		conn:    conn,
		metrics: syncer.NewMetrics(prometheus.NewRegistry()),
		clock:   c,
	}
}

func (f *fixture) enqueue(t *testing.T, name string) model.Entry {
	t.Helper()

	entry, err := f.queue.Enqueue(context.Background(), model.Draft{
		AccommodationID: "5f0c2f8e-8f8a-4d55-9a55-8a3c2a1b9e01",
		CheckInDate:     "2026-04-10",
		CheckOutDate:    "2026-04-12",
		Guests:          2,
		GuestName:       name,
		GuestEmail:      "guest@example.com",
		GuestPhone:      "+6281234",
	})
	require.NoError(t, err)

	return entry
}

type offlineIDMatcher string

func (m offlineIDMatcher) Matches(x any) bool {
	req, ok := x.(bookingDto.CreateBookingRequest)

	return ok && req.OfflineID != nil && *req.OfflineID == string(m)
}

func (m offlineIDMatcher) String() string {
	return "has offline_id " + string(m)
}

func withOfflineID(id string) gomock.Matcher {
	return offlineIDMatcher(id)
}

func TestCoordinator_Drain_Offline(t *testing.T) {
	f := setup(t)
	f.enqueue(t, "Ayu")
	f.conn.online.Store(false)

	report := syncer.NewCoordinator(f.queue, f.client, f.conn, f.metrics).Drain(context.Background())

	assert.True(t, report.Skipped)
	assert.Zero(t, report.Attempted)
	assert.Zero(t, testutil.ToFloat64(f.metrics.Drains))
}

func TestCoordinator_Drain(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	first := f.enqueue(t, "first")
	second := f.enqueue(t, "second")
	third := f.enqueue(t, "third")

	gomock.InOrder(
		f.client.EXPECT().CreateBooking(gomock.Any(), withOfflineID(first.OfflineID)).
			Return(bookingDto.BookingResponse{BookingReference: "LUX-STD-2604-001"}, true, nil),
		f.client.EXPECT().CreateBooking(gomock.Any(), withOfflineID(second.OfflineID)).
			Return(bookingDto.BookingResponse{}, false, &client.APIError{StatusCode: 500, Message: "boom"}),
		f.client.EXPECT().CreateBooking(gomock.Any(), withOfflineID(third.OfflineID)).
			Return(bookingDto.BookingResponse{BookingReference: "LUX-STD-2604-002"}, false, nil),
	)

	report := syncer.NewCoordinator(f.queue, f.client, f.conn, f.metrics).Drain(ctx)

	assert.False(t, report.Skipped)
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Synced)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, second.OfflineID, report.Failed[0].OfflineID)
	assert.True(t, report.Failed[0].Retryable)

	all, err := f.queue.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3, "drain never deletes entries")

	assert.Equal(t, model.SyncStatusSynced, all[0].SyncStatus)
	assert.Equal(t, "LUX-STD-2604-001", all[0].Reference())
	assert.Equal(t, model.SyncStatusFailed, all[1].SyncStatus)
	assert.Equal(t, "server returned 500: boom", all[1].LastError)
	assert.Equal(t, model.SyncStatusSynced, all[2].SyncStatus)

	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.Replays.WithLabelValues(syncer.OutcomeSynced)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Replays.WithLabelValues(syncer.OutcomeFailed)))
	assert.Equal(t, 3.0, testutil.ToFloat64(f.metrics.Pending))

	t.Run("second drain finds nothing pending", func(t *testing.T) {
		again := syncer.NewCoordinator(f.queue, f.client, f.conn, f.metrics).Drain(ctx)
		assert.Zero(t, again.Attempted)
	})
}

func TestCoordinator_Drain_AlreadySyncedElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queueMocks.NewMockQueue(ctrl)
	c := clientMocks.NewMockClient(ctrl)
	conn := &switchable{}
	conn.online.Store(true)

	entry := model.Entry{OfflineID: "off-1", SyncStatus: model.SyncStatusPending}

	q.EXPECT().ListPending(gomock.Any()).Return([]model.Entry{entry}, nil)
	c.EXPECT().CreateBooking(gomock.Any(), withOfflineID("off-1")).
		Return(bookingDto.BookingResponse{BookingReference: "LUX-STD-2604-001"}, false, nil)
	q.EXPECT().MarkSynced(gomock.Any(), "off-1", "LUX-STD-2604-001").
		Return(model.Entry{}, queue.ErrInvalidTransition)

	report := syncer.NewCoordinator(q, c, conn, syncer.NewMetrics(prometheus.NewRegistry())).Drain(context.Background())

	assert.Equal(t, 1, report.Synced)
	assert.Empty(t, report.Failed)
}

func TestCoordinator_Drain_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queueMocks.NewMockQueue(ctrl)
	conn := &switchable{}
	conn.online.Store(true)

	q.EXPECT().ListPending(gomock.Any()).Return(nil, &queue.StorageUnavailableError{Op: "list", Err: errors.New("disk I/O error")})

	report := syncer.NewCoordinator(q, clientMocks.NewMockClient(ctrl), conn, syncer.NewMetrics(prometheus.NewRegistry())).
		Drain(context.Background())

	assert.Zero(t, report.Attempted)
}

func TestRegistrations(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	registrations := syncer.NewRegistrations(f.store, f.clock.Now)

	_, found, err := registrations.Get(ctx, model.SyncTag)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, registrations.Register(ctx, model.SyncTag))

	registration, found, err := registrations.Get(ctx, model.SyncTag)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, registration.Pending())

	require.NoError(t, registrations.MarkFired(ctx, model.SyncTag))

	registration, _, err = registrations.Get(ctx, model.SyncTag)
	require.NoError(t, err)
	assert.False(t, registration.Pending())

	require.NoError(t, registrations.Register(ctx, model.SyncTag))

	registration, _, err = registrations.Get(ctx, model.SyncTag)
	require.NoError(t, err)
	assert.True(t, registration.Pending())
}

type stubSubscriber struct {
	mu sync.Mutex
	fn func(bool)
}

func (s *stubSubscriber) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fn = fn

	return func() {}
}

func (s *stubSubscriber) emit(online bool) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		fn(online)
	}
}

func (s *stubSubscriber) subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fn != nil
}

func TestWorker_Run(t *testing.T) {
	f := setup(t)
	f.conn.online.Store(false)

	entry := f.enqueue(t, "Ayu")
	registrations := syncer.NewRegistrations(f.store, f.clock.Now)
	require.NoError(t, registrations.Register(context.Background(), model.SyncTag))

	synced := make(chan struct{})

	f.client.EXPECT().CreateBooking(gomock.Any(), withOfflineID(entry.OfflineID)).
		DoAndReturn(func(context.Context, bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, bool, error) {
			close(synced)

			return bookingDto.BookingResponse{BookingReference: "LUX-STD-2604-001"}, true, nil
		})

	subscriber := &stubSubscriber{}
	coordinator := syncer.NewCoordinator(f.queue, f.client, f.conn, f.metrics)
	worker := syncer.NewWorker(coordinator, registrations, subscriber, time.Hour)

	warmed := atomic.Bool{}
	worker.OnOnline(func(context.Context) { warmed.Store(true) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go worker.Run(ctx)

	require.Eventually(t, subscriber.subscribed, time.Second, 5*time.Millisecond)

	f.conn.online.Store(true)
	subscriber.emit(true)

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("online transition did not drain the queue")
	}

	assert.True(t, warmed.Load())

	require.Eventually(t, func() bool {
		registration, _, err := registrations.Get(context.Background(), model.SyncTag)

		return err == nil && !registration.Pending()
	}, time.Second, 5*time.Millisecond)
}
