package service

import (
	"context"
	"fmt"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/repository"
	"resort/shared/bookingref"
	gDto "resort/shared/dto"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
)

// firstReference counts the bookings of the accommodation created this month and
// returns the parts of the reference that follows them.
func (s *serviceImpl) firstReference(ctx context.Context, accommodationID, accommodationType, packageCode string) (bookingref.Parts, error) {
	now := timezone.Now()
	start, end := bookingref.MonthRange(now)

	count, err := s.repo.Count(ctx, repository.CreatedWithinMonth(accommodationID, start, end))
	if err != nil {
		log.Error().Err(err).Str("accommodation_id", accommodationID).Msg("failed to count bookings of the month")

		return bookingref.Parts{}, fmt.Errorf("failed to count bookings of the month: %w", err)
	}

	return bookingref.New(accommodationType, packageCode, now, count), nil
}

// lastSequence returns the highest sequence stored under prefix by any accommodation.
func (s *serviceImpl) lastSequence(ctx context.Context, prefix string) (int, error) {
	taken, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.ReferencesWithPrefix(prefix), model.FieldBookingReference)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to read taken booking references")

		return 0, fmt.Errorf("failed to read taken booking references: %w", err)
	}

	references := make([]string, 0, len(taken))
	for _, booking := range taken {
		references = append(references, booking.BookingReference)
	}

	return bookingref.LastSequence(prefix, references), nil
}
