package refcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	accommodationDto "resort/internal/domains/accommodation/model/dto"
	packageDto "resort/internal/domains/packages/model/dto"
	"resort/internal/offline/client"
	"resort/internal/offline/model"
	"resort/internal/offline/store"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Result[T any] struct {
	Items []T
	// Stale is set when Items came from the local snapshot, or when there was nothing to show.
	Stale bool
	// FetchedAt is when Items left the server. Zero when no snapshot exists.
	FetchedAt time.Time
}

// Cache serves reference data from the server when reachable and from the last
// snapshot otherwise. Reads never fail.
type Cache struct {
	client client.Client
	db     *sqlx.DB
	now    func() time.Time
}

func New(c client.Client, st *store.Store, now func() time.Time) *Cache {
	return &Cache{
		client: c,
		db:     st.DB,
		now:    now,
	}
}

func (c *Cache) Accommodations(ctx context.Context) Result[accommodationDto.AccommodationResponse] {
	return readThrough(ctx, c, model.SnapshotAccommodations, c.client.Accommodations)
}

func (c *Cache) Packages(ctx context.Context) Result[packageDto.PackageResponse] {
	return readThrough(ctx, c, model.SnapshotPackages, c.client.Packages)
}

// Refresh fetches every kind and replaces the snapshots, reporting fetches that fell
// back to stale data.
func (c *Cache) Refresh(ctx context.Context) error {
	var errs []error

	if res := c.Accommodations(ctx); res.Stale {
		errs = append(errs, fmt.Errorf("%s not refreshed", model.SnapshotAccommodations))
	}

	if res := c.Packages(ctx); res.Stale {
		errs = append(errs, fmt.Errorf("%s not refreshed", model.SnapshotPackages))
	}

	return errors.Join(errs...)
}

func readThrough[T any](
	ctx context.Context,
	c *Cache,
	kind model.SnapshotKind,
	fetch func(context.Context) ([]T, error),
) Result[T] {
	items, err := fetch(ctx)
	if err == nil {
		now := c.now().UTC()

		if err := c.save(ctx, kind, items, now); err != nil {
			log.Error().Err(err).Str("kind", string(kind)).Msg("failed to replace reference snapshot")
		}

		return Result[T]{Items: items, FetchedAt: now}
	}

	log.Warn().Err(err).Str("kind", string(kind)).Msg("Serving reference data from snapshot")

	snapshot, found, err := c.load(ctx, kind)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to read reference snapshot")
	}

	if !found {
		return Result[T]{Items: []T{}, Stale: true}
	}

	cached := []T{}
	if err := json.Unmarshal(snapshot.Payload, &cached); err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to decode reference snapshot")

		return Result[T]{Items: []T{}, Stale: true}
	}

	return Result[T]{Items: cached, Stale: true, FetchedAt: snapshot.FetchedAt}
}

func (c *Cache) save(ctx context.Context, kind model.SnapshotKind, items any, fetchedAt time.Time) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	query, args, err := sq.Insert(model.TableReferenceSnapshots).
		Columns(model.FieldKind, model.FieldPayload, model.FieldFetchedAt).
		Values(kind, payload, fetchedAt).
		Suffix("ON CONFLICT (" + model.FieldKind + ") DO UPDATE SET " +
			model.FieldPayload + " = excluded." + model.FieldPayload + ", " +
			model.FieldFetchedAt + " = excluded." + model.FieldFetchedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building snapshot query: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error writing snapshot: %w", err)
	}

	return nil
}

func (c *Cache) load(ctx context.Context, kind model.SnapshotKind) (model.Snapshot, bool, error) {
	query, args, err := sq.Select(model.FieldKind, model.FieldPayload, model.FieldFetchedAt).
		From(model.TableReferenceSnapshots).
		Where(sq.Eq{model.FieldKind: kind}).
		ToSql()
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("error building snapshot query: %w", err)
	}

	var snapshot model.Snapshot
	if err := c.db.GetContext(ctx, &snapshot, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Snapshot{}, false, nil
		}

		return model.Snapshot{}, false, fmt.Errorf("error reading snapshot: %w", err)
	}

	return snapshot, true, nil
}
