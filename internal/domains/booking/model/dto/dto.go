package dto

import (
	"math"
	"resort/internal/domains/booking/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	AccommodationID string   `json:"accommodation_id" validate:"required,uuid"`
	PackageID       *string  `json:"package_id"       validate:"omitempty,uuid"`
	CheckInDate     string   `json:"check_in_date"    validate:"required,date"`
	CheckOutDate    string   `json:"check_out_date"   validate:"required,date"`
	Guests          int      `json:"guests"           validate:"required,gte=1"`
	GuestName       string   `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string   `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string   `json:"guest_phone"      validate:"required,max=20"`
	SpecialRequests string   `json:"special_requests" validate:"omitempty,max=1000"`
	TotalAmount     *float64 `json:"total_amount"     validate:"omitempty,gte=0"`
	OfflineID       *string  `json:"offline_id"       validate:"omitempty,uuid"`
}

// Normalize turns blank optional identifiers into nil.
func (c *CreateBookingRequest) Normalize() {
	if c.PackageID != nil && strings.TrimSpace(*c.PackageID) == "" {
		c.PackageID = nil
	}

	if c.OfflineID != nil && strings.TrimSpace(*c.OfflineID) == "" {
		c.OfflineID = nil
	}
}

// Stay parses the check-in and check-out dates and enforces check-out after check-in.
func (c *CreateBookingRequest) Stay() (time.Time, time.Time, error) {
	return ParseStay(c.CheckInDate, c.CheckOutDate)
}

// Pricing resolves the stored amount. An override that differs from computed by more
// than model.AmountEpsilon keeps computed as the original amount.
func Pricing(computed float64, override *float64) (float64, *float64) {
	if override == nil {
		return computed, nil
	}

	if math.Abs(*override-computed) > model.AmountEpsilon {
		original := computed

		return *override, &original
	}

	return *override, nil
}

func (c *CreateBookingRequest) ToModel(user, reference string, checkIn, checkOut time.Time, total float64, original *float64) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:               uuid.NewString(),
		BookingReference: reference,
		AccommodationID:  c.AccommodationID,
		PackageID:        c.PackageID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Guests:           c.Guests,
		GuestName:        strings.TrimSpace(c.GuestName),
		GuestEmail:       strings.ToLower(strings.TrimSpace(c.GuestEmail)),
		GuestPhone:       strings.TrimSpace(c.GuestPhone),
		TotalAmount:      total,
		OriginalAmount:   original,
		SpecialRequests:  c.SpecialRequests,
		Status:           model.StatusPending,
		OfflineID:        c.OfflineID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	Status          string   `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed completed cancelled"`
	GuestName       string   `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string   `db:"guest_email"      json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string   `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	Guests          int      `db:"guests"           json:"guests"           validate:"omitempty,gte=1"`
	SpecialRequests string   `db:"special_requests" json:"special_requests" validate:"omitempty,max=1000"`
	CheckInDate     string   `json:"check_in_date"  validate:"omitempty,date"`
	CheckOutDate    string   `json:"check_out_date" validate:"omitempty,date"`
	TotalAmount     *float64 `json:"total_amount"   validate:"omitempty,gte=0"`
}

func (u UpdateBookingRequest) IsEmpty() bool {
	return u.Status == "" && u.GuestName == "" && u.GuestEmail == "" && u.GuestPhone == "" &&
		u.Guests == 0 && u.SpecialRequests == "" && u.CheckInDate == "" && u.CheckOutDate == "" &&
		u.TotalAmount == nil
}

type BookingResponse struct {
	ID                string   `json:"id"`
	BookingReference  string   `json:"booking_reference"`
	AccommodationID   string   `json:"accommodation_id"`
	AccommodationName string   `json:"accommodation_name,omitempty"`
	AccommodationType string   `json:"accommodation_type,omitempty"`
	PackageID         *string  `json:"package_id"`
	PackageName       *string  `json:"package_name,omitempty"`
	CheckInDate       string   `json:"check_in_date"`
	CheckOutDate      string   `json:"check_out_date"`
	Nights            int      `json:"nights"`
	Guests            int      `json:"guests"`
	GuestName         string   `json:"guest_name"`
	GuestEmail        string   `json:"guest_email"`
	GuestPhone        string   `json:"guest_phone"`
	TotalAmount       float64  `json:"total_amount"`
	OriginalAmount    *float64 `json:"original_amount,omitempty"`
	SpecialRequests   string   `json:"special_requests"`
	Status            string   `json:"status"`
	OfflineID         *string  `json:"offline_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.AccommodationID = model.AccommodationID
	r.AccommodationName = model.AccommodationName
	r.AccommodationType = model.AccommodationType
	r.PackageID = model.PackageID
	r.PackageName = model.PackageName
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.Guests = model.Guests
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.TotalAmount = model.TotalAmount
	r.OriginalAmount = model.OriginalAmount
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.OfflineID = model.OfflineID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CreatedEvent is published on the booking created topic.
type CreatedEvent struct {
	ID               string  `json:"id"`
	BookingReference string  `json:"booking_reference"`
	AccommodationID  string  `json:"accommodation_id"`
	PackageID        *string `json:"package_id,omitempty"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	Guests           int     `json:"guests"`
	TotalAmount      float64 `json:"total_amount"`
	OfflineID        *string `json:"offline_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func (e *CreatedEvent) FromModel(model model.Booking) {
	e.ID = model.ID
	e.BookingReference = model.BookingReference
	e.AccommodationID = model.AccommodationID
	e.PackageID = model.PackageID
	e.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	e.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	e.Guests = model.Guests
	e.TotalAmount = model.TotalAmount
	e.OfflineID = model.OfflineID
	e.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
