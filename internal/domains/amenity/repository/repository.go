package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/amenity/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

// Amenity rows are hard deleted; nothing references them by key.
type Amenity interface {
	Insert(ctx context.Context, amenity model.Amenity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type amenities struct {
	gRepo.Repository[model.Amenity]
}

func New(db *postgres.Connection, tracer otel.Otel) Amenity {
	return &amenities{gRepo.NewRepository[model.Amenity](model.EntityName, model.TableName, model.FieldID, db, tracer)}
}
