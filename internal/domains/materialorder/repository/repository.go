package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/materialorder/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

// MaterialOrder stores supplier orders. Lines are written with their order and
// removed with it by the foreign key cascade.
type MaterialOrder interface {
	Create(ctx context.Context, order model.Order, items []model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Items(ctx context.Context, orderIDs ...string) ([]model.Item, error)
}

type orders struct {
	gRepo.Repository[model.Order]
	items gRepo.Repository[model.Item]
	db    *postgres.Connection
}

func New(db *postgres.Connection, tracer otel.Otel) MaterialOrder {
	return &orders{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, tracer),
		items:      gRepo.NewRepository[model.Item](model.ItemEntityName, model.ItemTableName, model.FieldID, db, tracer),
		db:         db,
	}
}

func (r *orders) Create(ctx context.Context, order model.Order, items []model.Item) error {
	return gRepo.Transaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, order); err != nil {
			return err
		}

		for _, item := range items {
			if err := r.items.InsertTx(ctx, tx, item); err != nil {
				return fmt.Errorf("failed to insert line %q: %w", item.ItemName, err)
			}
		}

		return nil
	})
}

// Items returns the lines of the given orders by item name.
func (r *orders) Items(ctx context.Context, orderIDs ...string) ([]model.Item, error) {
	if len(orderIDs) == 0 {
		return []model.Item{}, nil
	}

	params := gDto.QueryParams{SortBy: model.ItemTableName + "." + model.FieldItemName, SortDir: gDto.SortDirAsc}
	filter := gDto.All(gDto.Where(model.ItemTableName, model.FieldOrderID, gDto.FilterOperatorIn, orderIDs))

	return r.items.GetAll(ctx, params, filter)
}
