package syncer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resort/internal/offline/model"
	"resort/internal/offline/store"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Registrations persists background sync intents so a process started later still
// sees work registered by another one.
type Registrations interface {
	Register(ctx context.Context, tag string) error
	Get(ctx context.Context, tag string) (model.Registration, bool, error)
	MarkFired(ctx context.Context, tag string) error
}

type registrationsImpl struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRegistrations(st *store.Store, now func() time.Time) Registrations {
	return &registrationsImpl{
		db:  st.DB,
		now: now,
	}
}

func (r *registrationsImpl) Register(ctx context.Context, tag string) error {
	query, args, err := sq.Insert(model.TableSyncRegistrations).
		Columns(model.FieldTag, model.FieldRegisteredAt).
		Values(tag, r.now().UTC()).
		Suffix("ON CONFLICT (" + model.FieldTag + ") DO UPDATE SET " +
			model.FieldRegisteredAt + " = excluded." + model.FieldRegisteredAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building register query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error registering sync %s: %w", tag, err)
	}

	return nil
}

func (r *registrationsImpl) Get(ctx context.Context, tag string) (model.Registration, bool, error) {
	query, args, err := sq.Select(model.FieldTag, model.FieldRegisteredAt, model.FieldLastFiredAt).
		From(model.TableSyncRegistrations).
		Where(sq.Eq{model.FieldTag: tag}).
		ToSql()
	if err != nil {
		return model.Registration{}, false, fmt.Errorf("error building registration query: %w", err)
	}

	var registration model.Registration
	if err := r.db.GetContext(ctx, &registration, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Registration{}, false, nil
		}

		return model.Registration{}, false, fmt.Errorf("error reading sync registration %s: %w", tag, err)
	}

	return registration, true, nil
}

func (r *registrationsImpl) MarkFired(ctx context.Context, tag string) error {
	query, args, err := sq.Update(model.TableSyncRegistrations).
		Set(model.FieldLastFiredAt, r.now().UTC()).
		Where(sq.Eq{model.FieldTag: tag}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building fire query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error marking sync %s fired: %w", tag, err)
	}

	return nil
}
