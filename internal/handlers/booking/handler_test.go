package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "resort/infras/otel/mocks"
	"resort/internal/domains/booking/model/dto"
	bookingMocks "resort/internal/domains/booking/service/mocks"
	"resort/internal/handlers/booking"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

const validBooking = `{
	"accommodation_id": "6f1c2a9e-3d4b-4c5a-9e8f-0a1b2c3d4e5f",
	"check_in_date": "2026-11-01",
	"check_out_date": "2026-11-04",
	"guests": 2,
	"guest_name": "Ayu",
	"guest_email": "ayu@example.test",
	"guest_phone": "+62811000111",
	"offline_id": "9b2e4c6a-1d3f-4e5a-8b7c-6d5e4f3a2b10"
}`

func newRouter(t *testing.T) (*chi.Mux, *bookingMocks.MockBooking) {
	t.Helper()

	svc := bookingMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateBooking(t *testing.T) {
	stored := dto.BookingResponse{ID: "b-1", BookingReference: "VIL-STD-2611-001"}

	tests := []struct {
		name     string
		body     string
		setup    func(svc *bookingMocks.MockBooking)
		wantCode int
		wantBody string
	}{
		{
			name: "new booking",
			body: validBooking,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, true, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: "VIL-STD-2611-001",
		},
		{
			name: "replayed offline booking",
			body: validBooking,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, false, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "VIL-STD-2611-001",
		},
		{
			name:     "invalid date",
			body:     strings.Replace(validBooking, "2026-11-01", "01/11/2026", 1),
			setup:    func(*bookingMocks.MockBooking) {},
			wantCode: http.StatusBadRequest,
			wantBody: "check_in_date",
		},
		{
			name:     "offline id that is not a uuid",
			body:     strings.Replace(validBooking, "9b2e4c6a-1d3f-4e5a-8b7c-6d5e4f3a2b10", "device-1:42", 1),
			setup:    func(*bookingMocks.MockBooking) {},
			wantCode: http.StatusBadRequest,
			wantBody: "offline_id",
		},
		{
			name: "service rejects range",
			body: validBooking,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, false, failure.BadRequestFromString("check_out_date must be after check_in_date"))
			},
			wantCode: http.StatusBadRequest,
			wantBody: "check_out_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestGetBookings_SortWhitelist(t *testing.T) {
	tests := []struct {
		query   string
		sortBy  string
		sortDir string
	}{
		{query: "", sortBy: "bookings.created_at", sortDir: gDto.SortDirDesc},
		{query: "?sort_by=check_in_date&sort_dir=ASC", sortBy: "bookings.check_in_date", sortDir: gDto.SortDirAsc},
		{query: "?sort_by=guest_phone;drop", sortBy: "bookings.created_at", sortDir: gDto.SortDirDesc},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, params gDto.QueryParams, _ gDto.FilterGroup) (dto.GetBookingsResponse, error) {
					assert.Equal(t, tt.sortBy, params.SortBy)
					assert.Equal(t, tt.sortDir, params.SortDir)

					return dto.GetBookingsResponse{}, nil
				})

			rec := serve(router, http.MethodGet, "/bookings"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDeleteBooking_NotFound(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "missing").Return(failure.NotFound("booking not found"))

	rec := serve(router, http.MethodDelete, "/bookings/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
