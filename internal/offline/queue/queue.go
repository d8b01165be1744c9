package queue

//go:generate go run go.uber.org/mock/mockgen -source=./queue.go -destination=./mocks/queue_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resort/internal/offline/model"
	"resort/internal/offline/store"
	"resort/shared/bookingref"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var entryColumns = []string{
	model.FieldOfflineID,
	model.FieldProvisionalReference,
	"accommodation_id",
	"package_id",
	"check_in_date",
	"check_out_date",
	"guests",
	"guest_name",
	"guest_email",
	"guest_phone",
	"special_requests",
	"total_amount",
	model.FieldSyncStatus,
	model.FieldAttempts,
	model.FieldLastError,
	model.FieldServerReference,
	model.FieldCreatedAt,
	model.FieldUpdatedAt,
}

type Queue interface {
	// Enqueue stores draft as a pending entry. The entry is durable once Enqueue returns.
	Enqueue(ctx context.Context, draft model.Draft) (model.Entry, error)
	Get(ctx context.Context, offlineID string) (model.Entry, error)
	ListAll(ctx context.Context) ([]model.Entry, error)
	ListPending(ctx context.Context) ([]model.Entry, error)
	UpdateStatus(ctx context.Context, offlineID string, status model.SyncStatus) (model.Entry, error)
	MarkSynced(ctx context.Context, offlineID, serverReference string) (model.Entry, error)
	MarkFailed(ctx context.Context, offlineID, reason string) (model.Entry, error)
	Retry(ctx context.Context, offlineID string) (model.Entry, error)
}

type queueImpl struct {
	db    *sqlx.DB
	now   func() time.Time
	rnd   bookingref.Random
	newID func() string
}

func New(st *store.Store, now func() time.Time, rnd bookingref.Random) Queue {
	return &queueImpl{
		db:    st.DB,
		now:   now,
		rnd:   rnd,
		newID: uuid.NewString,
	}
}

func (q *queueImpl) Enqueue(ctx context.Context, draft model.Draft) (model.Entry, error) {
	now := q.now().UTC()

	entry := model.Entry{
		OfflineID:            q.newID(),
		ProvisionalReference: bookingref.Provisional(now, q.rnd),
		SyncStatus:           model.SyncStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
		Draft:                draft,
	}

	query, args, err := sq.Insert(model.TableOfflineBookings).
		Columns(entryColumns...).
		Values(
			entry.OfflineID,
			entry.ProvisionalReference,
			draft.AccommodationID,
			draft.PackageID,
			draft.CheckInDate,
			draft.CheckOutDate,
			draft.Guests,
			draft.GuestName,
			draft.GuestEmail,
			draft.GuestPhone,
			draft.SpecialRequests,
			draft.TotalAmount,
			entry.SyncStatus,
			entry.Attempts,
			entry.LastError,
			entry.ServerReference,
			entry.CreatedAt,
			entry.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return model.Entry{}, fmt.Errorf("error building enqueue query: %w", err)
	}

	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Entry{}, unavailable("enqueue", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		tx.Rollback()

		return model.Entry{}, unavailable("enqueue", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Entry{}, unavailable("enqueue", err)
	}

	return entry, nil
}

func (q *queueImpl) Get(ctx context.Context, offlineID string) (model.Entry, error) {
	return q.get(ctx, q.db, offlineID)
}

func (q *queueImpl) ListAll(ctx context.Context) ([]model.Entry, error) {
	return q.list(ctx, nil)
}

func (q *queueImpl) ListPending(ctx context.Context) ([]model.Entry, error) {
	return q.list(ctx, sq.Eq{model.FieldSyncStatus: model.SyncStatusPending})
}

func (q *queueImpl) UpdateStatus(ctx context.Context, offlineID string, status model.SyncStatus) (model.Entry, error) {
	if !status.Valid() {
		return model.Entry{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return q.transition(ctx, offlineID, status, nil)
}

func (q *queueImpl) MarkSynced(ctx context.Context, offlineID, serverReference string) (model.Entry, error) {
	return q.transition(ctx, offlineID, model.SyncStatusSynced, func(update sq.UpdateBuilder, current model.Entry) sq.UpdateBuilder {
		return update.
			Set(model.FieldServerReference, serverReference).
			Set(model.FieldAttempts, current.Attempts+1).
			Set(model.FieldLastError, "")
	})
}

func (q *queueImpl) MarkFailed(ctx context.Context, offlineID, reason string) (model.Entry, error) {
	return q.transition(ctx, offlineID, model.SyncStatusFailed, func(update sq.UpdateBuilder, current model.Entry) sq.UpdateBuilder {
		return update.
			Set(model.FieldAttempts, current.Attempts+1).
			Set(model.FieldLastError, reason)
	})
}

func (q *queueImpl) Retry(ctx context.Context, offlineID string) (model.Entry, error) {
	return q.UpdateStatus(ctx, offlineID, model.SyncStatusPending)
}

// transition moves an entry to status inside one immediate transaction. The update only
// matches while the row still holds the status it was read with, so concurrent writers
// never overwrite each other's outcome.
func (q *queueImpl) transition(
	ctx context.Context,
	offlineID string,
	status model.SyncStatus,
	extra func(sq.UpdateBuilder, model.Entry) sq.UpdateBuilder,
) (model.Entry, error) {
	tx, err := q.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Entry{}, unavailable("update status", err)
	}

	defer tx.Rollback()

	current, err := q.get(ctx, tx, offlineID)
	if err != nil {
		return model.Entry{}, err
	}

	if current.SyncStatus == status {
		return current, nil
	}

	if !current.SyncStatus.CanTransition(status) {
		return current, transitionError(current.SyncStatus, status)
	}

	update := sq.Update(model.TableOfflineBookings).
		Set(model.FieldSyncStatus, status).
		Set(model.FieldUpdatedAt, q.now().UTC()).
		Where(sq.Eq{model.FieldOfflineID: offlineID, model.FieldSyncStatus: current.SyncStatus})

	if extra != nil {
		update = extra(update, current)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return model.Entry{}, fmt.Errorf("error building status update: %w", err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Entry{}, unavailable("update status", err)
	}

	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		return current, transitionError(current.SyncStatus, status)
	}

	updated, err := q.get(ctx, tx, offlineID)
	if err != nil {
		return model.Entry{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Entry{}, unavailable("update status", err)
	}

	return updated, nil
}

func (q *queueImpl) get(ctx context.Context, db sqlx.QueryerContext, offlineID string) (model.Entry, error) {
	query, args, err := sq.Select(entryColumns...).
		From(model.TableOfflineBookings).
		Where(sq.Eq{model.FieldOfflineID: offlineID}).
		ToSql()
	if err != nil {
		return model.Entry{}, fmt.Errorf("error building get query: %w", err)
	}

	var entry model.Entry
	if err := sqlx.GetContext(ctx, db, &entry, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, offlineID)
		}

		return model.Entry{}, unavailable("get", err)
	}

	return entry, nil
}

func (q *queueImpl) list(ctx context.Context, where sq.Sqlizer) ([]model.Entry, error) {
	builder := sq.Select(entryColumns...).
		From(model.TableOfflineBookings).
		OrderBy(model.FieldCreatedAt, model.FieldOfflineID)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	entries := []model.Entry{}
	if err := q.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, unavailable("list", err)
	}

	return entries, nil
}
