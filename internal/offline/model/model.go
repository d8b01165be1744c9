package model

import (
	"time"

	bookingDto "resort/internal/domains/booking/model/dto"
)

type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusFailed  SyncStatus = "failed"
)

func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusPending, SyncStatusSynced, SyncStatusFailed:
		return true
	}

	return false
}

// CanTransition reports whether an entry may move from s to next. Re-applying the
// current status is allowed and changes nothing. Only pending entries reach an
// outcome; a failed entry has to be put back to pending before it is replayed.
func (s SyncStatus) CanTransition(next SyncStatus) bool {
	if s == next {
		return true
	}

	switch s {
	case SyncStatusPending:
		return next == SyncStatusSynced || next == SyncStatusFailed
	case SyncStatusFailed:
		return next == SyncStatusPending
	case SyncStatusSynced:
		return false
	}

	return false
}

const (
	TableOfflineBookings    = "offline_bookings"
	TableReferenceSnapshots = "reference_snapshots"
	TableSyncRegistrations  = "sync_registrations"

	FieldOfflineID            = "offline_id"
	FieldProvisionalReference = "provisional_reference"
	FieldSyncStatus           = "sync_status"
	FieldAttempts             = "attempts"
	FieldLastError            = "last_error"
	FieldServerReference      = "server_reference"
	FieldCreatedAt            = "created_at"
	FieldUpdatedAt            = "updated_at"

	FieldKind      = "kind"
	FieldPayload   = "payload"
	FieldFetchedAt = "fetched_at"

	FieldTag          = "tag"
	FieldRegisteredAt = "registered_at"
	FieldLastFiredAt  = "last_fired_at"
)

// SyncTag names the background sync registration for queued bookings.
const SyncTag = "sync-bookings"

// Draft is a booking captured at the front desk before the server has seen it.
type Draft struct {
	AccommodationID string   `db:"accommodation_id"`
	PackageID       *string  `db:"package_id"`
	CheckInDate     string   `db:"check_in_date"`
	CheckOutDate    string   `db:"check_out_date"`
	Guests          int      `db:"guests"`
	GuestName       string   `db:"guest_name"`
	GuestEmail      string   `db:"guest_email"`
	GuestPhone      string   `db:"guest_phone"`
	SpecialRequests string   `db:"special_requests"`
	TotalAmount     *float64 `db:"total_amount"`
}

// Request builds the create payload. An empty offlineID sends none.
func (d Draft) Request(offlineID string) bookingDto.CreateBookingRequest {
	req := bookingDto.CreateBookingRequest{
		AccommodationID: d.AccommodationID,
		PackageID:       d.PackageID,
		CheckInDate:     d.CheckInDate,
		CheckOutDate:    d.CheckOutDate,
		Guests:          d.Guests,
		GuestName:       d.GuestName,
		GuestEmail:      d.GuestEmail,
		GuestPhone:      d.GuestPhone,
		SpecialRequests: d.SpecialRequests,
		TotalAmount:     d.TotalAmount,
	}

	if offlineID != "" {
		req.OfflineID = &offlineID
	}

	req.Normalize()

	return req
}

// Entry is one queued booking. OfflineID is only an idempotency key; the canonical
// reference arrives as ServerReference once the server accepts it.
type Entry struct {
	OfflineID            string     `db:"offline_id"`
	ProvisionalReference string     `db:"provisional_reference"`
	SyncStatus           SyncStatus `db:"sync_status"`
	Attempts             int        `db:"attempts"`
	LastError            string     `db:"last_error"`
	ServerReference      *string    `db:"server_reference"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
	Draft
}

// Reference is what staff should quote to the guest right now.
func (e Entry) Reference() string {
	if e.ServerReference != nil && *e.ServerReference != "" {
		return *e.ServerReference
	}

	return e.ProvisionalReference
}

type SnapshotKind string

const (
	SnapshotAccommodations SnapshotKind = "accommodations"
	SnapshotPackages       SnapshotKind = "packages"
)

type Snapshot struct {
	Kind      SnapshotKind `db:"kind"`
	Payload   []byte       `db:"payload"`
	FetchedAt time.Time    `db:"fetched_at"`
}

type Registration struct {
	Tag          string     `db:"tag"`
	RegisteredAt time.Time  `db:"registered_at"`
	LastFiredAt  *time.Time `db:"last_fired_at"`
}

// Pending reports whether the registration was made after it last fired.
func (r Registration) Pending() bool {
	return r.LastFiredAt == nil || r.RegisteredAt.After(*r.LastFiredAt)
}
