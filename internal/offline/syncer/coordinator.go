package syncer

import (
	"context"
	"errors"
	"sync"

	"resort/internal/offline/client"
	"resort/internal/offline/queue"

	"github.com/rs/zerolog/log"
)

type Connectivity interface {
	Online() bool
}

type EntryFailure struct {
	OfflineID string
	Reason    string
	// Retryable is false when the server rejected the booking itself.
	Retryable bool
}

type Report struct {
	// Skipped is set when the drain did not run because the server was unreachable.
	Skipped   bool
	Attempted int
	Synced    int
	Failed    []EntryFailure
}

// Coordinator replays pending queue entries to the server.
type Coordinator struct {
	queue        queue.Queue
	client       client.Client
	connectivity Connectivity
	metrics      *Metrics

	mu sync.Mutex
}

func NewCoordinator(q queue.Queue, c client.Client, connectivity Connectivity, metrics *Metrics) *Coordinator {
	return &Coordinator{
		queue:        q,
		client:       c,
		connectivity: connectivity,
		metrics:      metrics,
	}
}

// Drain replays every pending entry once, in creation order, using its offline id as
// the idempotency key. A failed entry is recorded and the drain moves on. Drain never
// deletes entries and never returns an error; callers inspect the Report.
func (c *Coordinator) Drain(ctx context.Context) Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connectivity.Online() {
		log.Debug().Msg("Skipping sync drain while offline")

		return Report{Skipped: true}
	}

	pending, err := c.queue.ListPending(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list pending bookings")

		return Report{}
	}

	c.metrics.Drains.Inc()
	c.metrics.Pending.Set(float64(len(pending)))

	report := Report{}

	for _, entry := range pending {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Int("remaining", len(pending)-report.Attempted).Msg("Sync drain interrupted")

			break
		}

		report.Attempted++

		booking, _, err := c.client.CreateBooking(ctx, entry.Request(entry.OfflineID))
		if err != nil {
			c.fail(ctx, &report, entry.OfflineID, err)

			continue
		}

		_, err = c.queue.MarkSynced(ctx, entry.OfflineID, booking.BookingReference)
		if err != nil && !errors.Is(err, queue.ErrInvalidTransition) {
			// The server holds the booking; the next drain replays it and gets the same one back.
			log.Error().Err(err).Str("offlineID", entry.OfflineID).Msg("failed to record synced booking")
		}

		report.Synced++
		c.metrics.Replays.WithLabelValues(OutcomeSynced).Inc()

		log.Info().
			Str("offlineID", entry.OfflineID).
			Str("provisional", entry.ProvisionalReference).
			Str("reference", booking.BookingReference).
			Msg("Offline booking synced")
	}

	return report
}

func (c *Coordinator) fail(ctx context.Context, report *Report, offlineID string, cause error) {
	reason := cause.Error()
	retryable := true

	var apiErr *client.APIError
	if errors.As(cause, &apiErr) {
		retryable = apiErr.Retryable()
	}

	report.Failed = append(report.Failed, EntryFailure{OfflineID: offlineID, Reason: reason, Retryable: retryable})
	c.metrics.Replays.WithLabelValues(OutcomeFailed).Inc()

	log.Warn().Str("offlineID", offlineID).Str("reason", reason).Bool("retryable", retryable).Msg("Offline booking replay failed")

	if _, err := c.queue.MarkFailed(ctx, offlineID, reason); err != nil {
		log.Error().Err(err).Str("offlineID", offlineID).Msg("failed to record replay failure")
	}
}
