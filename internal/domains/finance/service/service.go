package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/infras/otel"
	"resort/internal/domains/finance/model"
	"resort/internal/domains/finance/model/dto"
	"resort/internal/domains/finance/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

// Finance keeps the income and expense ledgers. Records are entered once and
// removed when wrong; there is no edit.
type Finance interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (dto.IncomeResponse, error)
	GetIncome(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetIncomeResponse, error)
	DeleteIncome(ctx context.Context, id string) error
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (dto.ExpenseResponse, error)
	GetExpenses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetExpensesResponse, error)
	DeleteExpense(ctx context.Context, id string) error
	Summary(ctx context.Context, period dto.Period) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	income   repository.Income
	expenses repository.Expense
	otel     otel.Otel
}

func New(income repository.Income, expenses repository.Expense, otel otel.Otel) Finance {
	return &serviceImpl{
		income:   income,
		expenses: expenses,
		otel:     otel,
	}
}

func (s *serviceImpl) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+operation)
}

func (s *serviceImpl) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (res dto.IncomeResponse, err error) {
	ctx, scope := s.scope(ctx, "CreateIncome")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	income, err := req.ToModel(shared.UserID(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.income.Insert(ctx, income); err != nil {
		log.Error().Err(err).Msg("failed to create income record")

		return res, fmt.Errorf("failed to create income record: %w", err)
	}

	res.FromModel(income)

	return res, nil
}

func (s *serviceImpl) GetIncome(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetIncomeResponse, err error) {
	ctx, scope := s.scope(ctx, "GetIncome")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.income.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count income records")

		return res, fmt.Errorf("failed to count income records: %w", err)
	}

	models, err := s.income.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get income records")

		return res, fmt.Errorf("failed to get income records: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) DeleteIncome(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "DeleteIncome")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.IncomeTableName)

	exist, err := s.income.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if income record exists")

		return fmt.Errorf("failed to check if income record exists: %w", err)
	}

	if !exist {
		return failure.NotFound("income record not found") // nolint:wrapcheck
	}

	if err = s.income.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete income record")

		return fmt.Errorf("failed to delete income record: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (res dto.ExpenseResponse, err error) {
	ctx, scope := s.scope(ctx, "CreateExpense")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	expense, err := req.ToModel(shared.UserID(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.expenses.Insert(ctx, expense); err != nil {
		log.Error().Err(err).Msg("failed to create expense record")

		return res, fmt.Errorf("failed to create expense record: %w", err)
	}

	res.FromModel(expense)

	return res, nil
}

func (s *serviceImpl) GetExpenses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetExpensesResponse, err error) {
	ctx, scope := s.scope(ctx, "GetExpenses")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.expenses.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count expense records")

		return res, fmt.Errorf("failed to count expense records: %w", err)
	}

	models, err := s.expenses.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expense records")

		return res, fmt.Errorf("failed to get expense records: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) DeleteExpense(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "DeleteExpense")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.ExpenseTableName)

	exist, err := s.expenses.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if expense record exists")

		return fmt.Errorf("failed to check if expense record exists: %w", err)
	}

	if !exist {
		return failure.NotFound("expense record not found") // nolint:wrapcheck
	}

	if err = s.expenses.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete expense record")

		return fmt.Errorf("failed to delete expense record: %w", err)
	}

	return nil
}

// Summary totals both ledgers over the period. Net profit is income minus expenses.
func (s *serviceImpl) Summary(ctx context.Context, period dto.Period) (res dto.SummaryResponse, err error) {
	ctx, scope := s.scope(ctx, "Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = period.Validate(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Period = period

	if res.TotalIncome, err = s.income.Sum(ctx, model.FieldAmount, period.Filter(model.IncomeTableName)); err != nil {
		log.Error().Err(err).Msg("failed to total income")

		return res, fmt.Errorf("failed to total income: %w", err)
	}

	if res.TotalExpenses, err = s.expenses.Sum(ctx, model.FieldAmount, period.Filter(model.ExpenseTableName)); err != nil {
		log.Error().Err(err).Msg("failed to total expenses")

		return res, fmt.Errorf("failed to total expenses: %w", err)
	}

	res.NetProfit = res.TotalIncome - res.TotalExpenses

	return res, nil
}
