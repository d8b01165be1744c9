package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/accommodation/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

// Accommodation rows are never removed because bookings keep their ids.
type Accommodation interface {
	Insert(ctx context.Context, accommodation model.Accommodation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Accommodation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Accommodation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type accommodations struct {
	gRepo.Repository[model.Accommodation]
}

func New(db *postgres.Connection, tracer otel.Otel) Accommodation {
	return &accommodations{gRepo.NewRepository[model.Accommodation](model.EntityName, model.TableName, model.FieldID, db, tracer)}
}

// Bookable narrows filter to accommodations open for new bookings.
func Bookable(filter gDto.FilterGroup) gDto.FilterGroup {
	return gDto.All(filter, gDto.Where(model.TableName, model.FieldIsActive, gDto.FilterOperatorEq, true))
}
