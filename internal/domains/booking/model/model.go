package model

import (
	"resort/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldAccommodationID  = "accommodation_id"
	FieldPackageID        = "package_id"
	FieldCheckInDate      = "check_in_date"
	FieldCheckOutDate     = "check_out_date"
	FieldGuests           = "guests"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldTotalAmount      = "total_amount"
	FieldOriginalAmount   = "original_amount"
	FieldStatus           = "status"
	FieldOfflineID        = "offline_id"
	FieldDeletedAt        = "deleted_at"
	FieldCreatedAt        = "created_at"

	ConstraintReferenceUnique = "bookings_booking_reference_key"
	ConstraintOfflineIDUnique = "bookings_offline_id_key"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// AmountEpsilon is the largest override difference that still counts as the computed amount.
const AmountEpsilon = 0.01

type Booking struct {
	ID                string     `db:"id"`
	BookingReference  string     `db:"booking_reference"`
	AccommodationID   string     `db:"accommodation_id"`
	PackageID         *string    `db:"package_id"`
	CheckInDate       time.Time  `db:"check_in_date"`
	CheckOutDate      time.Time  `db:"check_out_date"`
	Guests            int        `db:"guests"`
	GuestName         string     `db:"guest_name"`
	GuestEmail        string     `db:"guest_email"`
	GuestPhone        string     `db:"guest_phone"`
	TotalAmount       float64    `db:"total_amount"`
	OriginalAmount    *float64   `db:"original_amount"`
	SpecialRequests   string     `db:"special_requests"`
	Status            string     `db:"status"`
	OfflineID         *string    `db:"offline_id"`
	DeletedAt         *time.Time `db:"deleted_at"`
	AccommodationName string     `column:"name"       db:"accommodation_name" table:"accommodations"`
	AccommodationType string     `column:"type"       db:"accommodation_type" table:"accommodations"`
	PackageName       *string    `column:"name"       db:"package_name"       table:"packages"`
	model.Metadata
}

func (Booking) Joins() []string {
	return []string{
		"JOIN accommodations ON accommodations.id = bookings.accommodation_id",
		"LEFT JOIN packages ON packages.id = bookings.package_id",
	}
}

func (b Booking) Nights() int {
	return Nights(b.CheckInDate, b.CheckOutDate)
}

// Nights counts whole nights between two calendar dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
