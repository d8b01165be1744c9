package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/packages/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type Package interface {
	Insert(ctx context.Context, pkg model.Package) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Package, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type packages struct {
	gRepo.Repository[model.Package]
}

func New(db *postgres.Connection, tracer otel.Otel) Package {
	return &packages{gRepo.NewRepository[model.Package](model.EntityName, model.TableName, model.FieldID, db, tracer)}
}

// NotDeleted narrows filter to packages without a deleted_at stamp.
func NotDeleted(filter gDto.FilterGroup) gDto.FilterGroup {
	return gDto.All(filter, gDto.Where(model.TableName, model.FieldDeletedAt, gDto.FilterIsNull, nil))
}
