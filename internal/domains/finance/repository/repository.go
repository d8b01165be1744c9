package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/finance/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type Income interface {
	Insert(ctx context.Context, income model.Income) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Income, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Income, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Sum(ctx context.Context, column string, filter gDto.FilterGroup) (float64, error)
}

type Expense interface {
	Insert(ctx context.Context, expense model.Expense) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Expense, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Expense, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Sum(ctx context.Context, column string, filter gDto.FilterGroup) (float64, error)
}

type income struct {
	gRepo.Repository[model.Income]
}

type expenses struct {
	gRepo.Repository[model.Expense]
}

func NewIncome(db *postgres.Connection, tracer otel.Otel) Income {
	return &income{gRepo.NewRepository[model.Income](model.IncomeEntityName, model.IncomeTableName, model.FieldID, db, tracer)}
}

func NewExpense(db *postgres.Connection, tracer otel.Otel) Expense {
	return &expenses{gRepo.NewRepository[model.Expense](model.ExpenseEntityName, model.ExpenseTableName, model.FieldID, db, tracer)}
}
