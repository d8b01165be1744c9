package submitter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookingDto "resort/internal/domains/booking/model/dto"
	"resort/internal/offline/client"
	clientMocks "resort/internal/offline/client/mocks"
	"resort/internal/offline/model"
	"resort/internal/offline/queue"
	queueMocks "resort/internal/offline/queue/mocks"
	"resort/internal/offline/submitter"
)

type connectivity bool

func (c connectivity) Online() bool { return bool(c) }

type registrar struct {
	tags []string
	err  error
}

func (r *registrar) Register(_ context.Context, tag string) error {
	r.tags = append(r.tags, tag)

	return r.err
}

type fixture struct {
	client    *clientMocks.MockClient
	queue     *queueMocks.MockQueue
	registrar *registrar
}

func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	return &fixture{
		client:    clientMocks.NewMockClient(ctrl),
		queue:     queueMocks.NewMockQueue(ctrl),
		registrar: &registrar{},
	}
}

func (f *fixture) submitter(online bool) *submitter.Submitter {
	return submitter.New(f.client, f.queue, f.registrar, connectivity(online))
}

func validDraft() model.Draft {
	return model.Draft{
		AccommodationID: "5f0c2f8e-8f8a-4d55-9a55-8a3c2a1b9e01",
		CheckInDate:     "2026-04-10",
		CheckOutDate:    "2026-04-13",
		Guests:          2,
		GuestName:       "Ayu Lestari",
		GuestEmail:      "ayu@example.com",
		GuestPhone:      "+6281234",
	}
}

func queued(draft model.Draft) model.Entry {
	return model.Entry{
		OfflineID:            "0b7f0d2c-0000-4000-8000-000000000001",
		ProvisionalReference: "OFF-202604-123",
		SyncStatus:           model.SyncStatusPending,
		Draft:                draft,
	}
}

func TestSubmitter_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Draft)
	}{
		{"missing guest name", func(d *model.Draft) { d.GuestName = "" }},
		{"bad email", func(d *model.Draft) { d.GuestEmail = "not-an-email" }},
		{"zero guests", func(d *model.Draft) { d.Guests = 0 }},
		{"check-out on check-in", func(d *model.Draft) { d.CheckOutDate = d.CheckInDate }},
		{"check-out before check-in", func(d *model.Draft) { d.CheckOutDate = "2026-04-01" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			draft := validDraft()
			tt.mutate(&draft)

			_, err := f.submitter(true).Submit(context.Background(), draft)

			var validationErr *submitter.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Empty(t, f.registrar.tags)
		})
	}
}

func TestSubmitter_Live(t *testing.T) {
	f := setup(t)

	f.client.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, bool, error) {
			assert.Nil(t, req.OfflineID)

			return bookingDto.BookingResponse{BookingReference: "LUX-STD-2604-001"}, true, nil
		})

	res, err := f.submitter(true).Submit(context.Background(), validDraft())
	require.NoError(t, err)

	assert.False(t, res.Offline)
	assert.Equal(t, "LUX-STD-2604-001", res.Reference)
	assert.Equal(t, submitter.HeadlineConfirmed, res.Headline())
	assert.Nil(t, res.Entry)
	assert.Empty(t, f.registrar.tags)
}

func TestSubmitter_Fallback(t *testing.T) {
	tests := []struct {
		name    string
		online  bool
		liveErr error
		reason  error
	}{
		{"offline", false, nil, submitter.ErrOffline},
		{"network error", true, client.ErrNetwork, client.ErrNetwork},
		{"server error", true, &client.APIError{StatusCode: 502}, &client.APIError{StatusCode: 502}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			draft := validDraft()

			if tt.online {
				f.client.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(bookingDto.BookingResponse{}, false, tt.liveErr)
			}

			f.queue.EXPECT().Enqueue(gomock.Any(), draft).Return(queued(draft), nil)

			res, err := f.submitter(tt.online).Submit(context.Background(), draft)
			require.NoError(t, err)

			assert.True(t, res.Offline)
			assert.Equal(t, "OFF-202604-123", res.Reference)
			assert.Equal(t, submitter.HeadlineOffline, res.Headline())
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, []string{model.SyncTag}, f.registrar.tags)
		})
	}
}

func TestSubmitter_EnqueueFailure(t *testing.T) {
	f := setup(t)
	draft := validDraft()

	storageErr := &queue.StorageUnavailableError{Op: "enqueue", Err: errors.New("database is locked")}
	f.queue.EXPECT().Enqueue(gomock.Any(), draft).Return(model.Entry{}, storageErr)

	_, err := f.submitter(false).Submit(context.Background(), draft)

	var target *queue.StorageUnavailableError
	assert.ErrorAs(t, err, &target)
	assert.Empty(t, f.registrar.tags)
}

func TestSubmitter_RegistrationFailureStillQueues(t *testing.T) {
	f := setup(t)
	draft := validDraft()
	f.registrar.err = errors.New("database is locked")

	f.queue.EXPECT().Enqueue(gomock.Any(), draft).Return(queued(draft), nil)

	res, err := f.submitter(false).Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.True(t, res.Offline)
}
