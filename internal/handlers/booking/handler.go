package booking

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// sortable maps the accepted sort_by values to qualified columns.
var sortable = map[string]string{
	model.FieldCreatedAt:        model.TableName + "." + model.FieldCreatedAt,
	model.FieldCheckInDate:      model.TableName + "." + model.FieldCheckInDate,
	model.FieldCheckOutDate:     model.TableName + "." + model.FieldCheckOutDate,
	model.FieldTotalAmount:      model.TableName + "." + model.FieldTotalAmount,
	model.FieldBookingReference: model.TableName + "." + model.FieldBookingReference,
	model.FieldStatus:           model.TableName + "." + model.FieldStatus,
}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) trace(r *http.Request, endpoint string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking."+endpoint)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(bookings chi.Router) {
		bookings.Post("/", handler.CreateBooking)
		bookings.Get("/", handler.GetBookings)
		bookings.Get("/{id}", handler.GetBookingByID)
		bookings.Patch("/{id}", handler.UpdateBooking)
		bookings.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking books a stay. Guests may call it without a token.
// @Summary Book a stay
// @Description Requests that carry an offline_id already stored return the stored booking with status 200.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Stay to book"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking already stored for this offline_id"
// @Failure 400 {object} response.Error "Validation, date range, unknown accommodation or package"
// @Failure 409 {object} response.Error "No free booking reference"
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "rejected booking body")

		return
	}

	booking, created, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to create booking")

		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}

	scope.SetAttributes(map[string]any{
		"booking.reference": booking.BookingReference,
		"booking.created":   created,
	})
	response.WithJSON(w, status, booking)
}

// GetBookings lists bookings that are not deleted.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Paging and sort_by (created_at, check_in_date, check_out_date, total_amount, booking_reference, status)"
// @Param status query string false "Exact status"
// @Param accommodation_id query string false "Exact accommodation"
// @Param booking_reference query string false "Exact reference"
// @Param guest_email query string false "Email substring"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	column, ok := sortable[params.SortBy]
	if !ok {
		column = sortable[model.FieldCreatedAt]
	}

	params.SortBy = column

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	query := r.URL.Query()
	filter := gDto.All()
	filter.FromQuery(query, model.TableName, gDto.FilterOperatorEq, model.FieldStatus, model.FieldAccommodationID, model.FieldBookingReference)
	filter.FromQuery(query, model.TableName, gDto.FilterOperatorLike, model.FieldGuestEmail)

	bookings, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		response.Fail(w, scope, err, "failed to list bookings")

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID shows one booking.
// @Summary Show a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to load booking")

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking amends dates, guests, contact details or status.
// @Summary Amend a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "UpdateBooking")
	defer scope.End()

	var req dto.UpdateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "rejected booking update body")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to update booking")

		return
	}

	scope.AddEvent("booking updated by " + shared.Actor(ctx))
	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// DeleteBooking cancels a booking and hides it from listings.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete booking")

		return
	}

	scope.AddEvent("booking deleted by " + shared.Actor(ctx))
	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
