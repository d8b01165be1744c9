package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/user/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

// User stores back-office accounts. Guests never get a row here.
type User interface {
	Insert(ctx context.Context, user model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type users struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, tracer otel.Otel) User {
	return &users{gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, tracer)}
}

// ByEmail matches the lower-cased login email.
func ByEmail(email string) gDto.FilterGroup {
	return gDto.All(gDto.Where(model.TableName, model.FieldEmail, gDto.FilterOperatorEq, email))
}
