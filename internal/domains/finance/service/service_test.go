package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/infras/otel/mocks"
	financeMocks "resort/internal/domains/finance/mocks"
	"resort/internal/domains/finance/model"
	"resort/internal/domains/finance/model/dto"
	"resort/internal/domains/finance/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func newService(t *testing.T) (service.Finance, *financeMocks.MockIncome, *financeMocks.MockExpense) {
	t.Helper()

	ctrl := gomock.NewController(t)
	income := financeMocks.NewMockIncome(ctrl)
	expenses := financeMocks.NewMockExpense(ctrl)

	return service.New(income, expenses, mocks.NewOtel()), income, expenses
}

func TestFinanceService_CreateIncome(t *testing.T) {
	svc, income, _ := newService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("stored with its date", func(t *testing.T) {
		income.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Income) error {
				assert.Equal(t, model.SourceExtras, m.Source)
				assert.Equal(t, "admin-id", m.CreatedBy)
				assert.Equal(t, 14, m.Date.Day())

				return nil
			})

		res, err := svc.CreateIncome(ctx, dto.CreateIncomeRequest{Amount: 45, Source: model.SourceExtras, Description: "Snorkel rental", Date: "2026-10-14"})

		require.NoError(t, err)
		assert.Equal(t, "2026-10-14", res.Date)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.CreateIncome(ctx, dto.CreateIncomeRequest{Amount: 45, Source: model.SourceOther, Date: "14-10-2026"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		income.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := svc.CreateIncome(ctx, dto.CreateIncomeRequest{Amount: 45, Source: model.SourceOther, Date: "2026-10-14"})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestFinanceService_GetExpenses(t *testing.T) {
	svc, _, expenses := newService(t)
	params := gDto.QueryParams{Page: 1, Limit: 2}

	t.Run("returns paginated list", func(t *testing.T) {
		expenses.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		expenses.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Expense{
			{ID: "e-1", Category: model.CategoryUtilities, Amount: 120},
			{ID: "e-2", Category: model.CategoryStaff, Amount: 900},
		}, nil)

		res, err := svc.GetExpenses(context.Background(), params, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Len(t, res.Expenses, 2)
		assert.Equal(t, 2, res.TotalPage)
		assert.Equal(t, model.CategoryStaff, res.Expenses[1].Category)
	})

	t.Run("count error", func(t *testing.T) {
		expenses.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetExpenses(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestFinanceService_DeleteExpense(t *testing.T) {
	svc, _, expenses := newService(t)

	t.Run("deleted", func(t *testing.T) {
		expenses.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		expenses.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.DeleteExpense(context.Background(), "e-1"))
	})

	t.Run("not found", func(t *testing.T) {
		expenses.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteExpense(context.Background(), "e-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFinanceService_DeleteIncome(t *testing.T) {
	svc, income, _ := newService(t)

	income.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.DeleteIncome(context.Background(), "i-1")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestFinanceService_Summary(t *testing.T) {
	t.Run("net profit over a period", func(t *testing.T) {
		svc, income, expenses := newService(t)
		period := dto.Period{From: "2026-10-01", To: "2026-10-31"}

		income.EXPECT().Sum(gomock.Any(), model.FieldAmount, period.Filter(model.IncomeTableName)).Return(5200.0, nil)
		expenses.EXPECT().Sum(gomock.Any(), model.FieldAmount, period.Filter(model.ExpenseTableName)).Return(1800.5, nil)

		res, err := svc.Summary(context.Background(), period)

		require.NoError(t, err)
		assert.InDelta(t, 3399.5, res.NetProfit, 0.001)
		assert.Equal(t, "2026-10-01", res.From)
	})

	t.Run("expenses above income", func(t *testing.T) {
		svc, income, expenses := newService(t)

		income.EXPECT().Sum(gomock.Any(), model.FieldAmount, gomock.Any()).Return(0.0, nil)
		expenses.EXPECT().Sum(gomock.Any(), model.FieldAmount, gomock.Any()).Return(250.0, nil)

		res, err := svc.Summary(context.Background(), dto.Period{})

		require.NoError(t, err)
		assert.InDelta(t, -250.0, res.NetProfit, 0.001)
	})

	t.Run("period ending before it starts", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Summary(context.Background(), dto.Period{From: "2026-10-31", To: "2026-10-01"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("income total error", func(t *testing.T) {
		svc, income, _ := newService(t)

		income.EXPECT().Sum(gomock.Any(), model.FieldAmount, gomock.Any()).Return(0.0, errors.New("database error"))

		_, err := svc.Summary(context.Background(), dto.Period{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
