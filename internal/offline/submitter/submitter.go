package submitter

import (
	"context"
	"errors"
	"fmt"

	bookingDto "resort/internal/domains/booking/model/dto"
	"resort/internal/offline/client"
	"resort/internal/offline/model"
	"resort/internal/offline/queue"
	"resort/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	HeadlineConfirmed = "Booking Confirmed"
	HeadlineOffline   = "Booking Saved Offline"
)

// ErrOffline is recorded as the fallback reason when no live attempt was made.
var ErrOffline = errors.New("server unreachable, live submission skipped")

// ValidationError rejects a draft before it reaches the server or the queue.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid booking: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type Connectivity interface {
	Online() bool
}

type Registrar interface {
	Register(ctx context.Context, tag string) error
}

type Result struct {
	Offline   bool
	Reference string
	// Booking is set for live submissions.
	Booking *bookingDto.BookingResponse
	// Entry is set for queued submissions.
	Entry *model.Entry
	// Reason explains why a submission was queued.
	Reason error
}

func (r Result) Headline() string {
	if r.Offline {
		return HeadlineOffline
	}

	return HeadlineConfirmed
}

// Submitter sends a booking live when it can and queues it when it cannot.
type Submitter struct {
	client       client.Client
	queue        queue.Queue
	registrar    Registrar
	connectivity Connectivity
}

func New(c client.Client, q queue.Queue, registrar Registrar, connectivity Connectivity) *Submitter {
	return &Submitter{
		client:       c,
		queue:        q,
		registrar:    registrar,
		connectivity: connectivity,
	}
}

// Submit validates draft, tries the server once when online, and otherwise stores the
// draft for background sync. An error means the booking was saved nowhere.
func (s *Submitter) Submit(ctx context.Context, draft model.Draft) (Result, error) {
	if err := Validate(draft); err != nil {
		return Result{}, err
	}

	reason := ErrOffline

	if s.connectivity.Online() {
		booking, _, err := s.client.CreateBooking(ctx, draft.Request(""))
		if err == nil {
			return Result{
				Reference: booking.BookingReference,
				Booking:   &booking,
			}, nil
		}

		log.Warn().Err(err).Msg("Live booking failed, saving offline")

		reason = err
	}

	entry, err := s.queue.Enqueue(ctx, draft)
	if err != nil {
		return Result{}, fmt.Errorf("error saving booking offline: %w", err)
	}

	if err := s.registrar.Register(ctx, model.SyncTag); err != nil {
		// The entry is durable; the agent still finds it on its next online transition.
		log.Error().Err(err).Str("offlineID", entry.OfflineID).Msg("failed to register background sync")
	}

	return Result{
		Offline:   true,
		Reference: entry.ProvisionalReference,
		Entry:     &entry,
		Reason:    reason,
	}, nil
}

// Validate applies the server's booking rules to a draft.
func Validate(draft model.Draft) error {
	req := draft.Request("")

	if err := validator.ValidateStruct(&req); err != nil {
		return &ValidationError{Err: err}
	}

	if _, _, err := req.Stay(); err != nil {
		return &ValidationError{Err: err}
	}

	return nil
}
