package syncer

import (
	"context"
	"time"

	"resort/internal/offline/model"

	"github.com/rs/zerolog/log"
)

type Subscriber interface {
	Subscribe(fn func(online bool)) func()
}

// Worker wakes the Coordinator when the server comes back online and when another
// process left a sync registration behind. Triggers that arrive during a drain are
// coalesced into one follow-up drain.
type Worker struct {
	coordinator   *Coordinator
	registrations Registrations
	subscriber    Subscriber
	interval      time.Duration
	onOnline      func(ctx context.Context)

	trigger chan struct{}
}

func NewWorker(coordinator *Coordinator, registrations Registrations, subscriber Subscriber, interval time.Duration) *Worker {
	return &Worker{
		coordinator:   coordinator,
		registrations: registrations,
		subscriber:    subscriber,
		interval:      interval,
		trigger:       make(chan struct{}, 1),
	}
}

// OnOnline runs fn on every offline to online transition, before the drain it triggers.
func (w *Worker) OnOnline(fn func(ctx context.Context)) {
	w.onOnline = fn
}

// Trigger requests a drain without blocking.
func (w *Worker) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Run drains once at start and then on every trigger until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	online := make(chan struct{}, 1)

	unsubscribe := w.subscriber.Subscribe(func(isOnline bool) {
		if !isOnline {
			return
		}

		select {
		case online <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Trigger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-online:
			if w.onOnline != nil {
				w.onOnline(ctx)
			}

			w.Trigger()
		case <-ticker.C:
			w.checkRegistration(ctx)
		case <-w.trigger:
			w.drain(ctx)
		}
	}
}

func (w *Worker) checkRegistration(ctx context.Context) {
	registration, found, err := w.registrations.Get(ctx, model.SyncTag)
	if err != nil {
		log.Error().Err(err).Msg("failed to read sync registration")

		return
	}

	if found && registration.Pending() {
		w.Trigger()
	}
}

func (w *Worker) drain(ctx context.Context) {
	if !w.coordinator.connectivity.Online() {
		return
	}

	// Fire before draining so a booking queued mid-drain registers again and is picked up next.
	if err := w.registrations.MarkFired(ctx, model.SyncTag); err != nil {
		log.Error().Err(err).Msg("failed to mark sync registration fired")
	}

	report := w.coordinator.Drain(ctx)
	if report.Skipped {
		return
	}

	log.Info().
		Int("attempted", report.Attempted).
		Int("synced", report.Synced).
		Int("failed", len(report.Failed)).
		Msg("Sync drain finished")
}
