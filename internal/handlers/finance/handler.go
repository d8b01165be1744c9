package finance

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/finance/model"
	"resort/internal/domains/finance/model/dto"
	"resort/internal/domains/finance/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	queryFrom = "from"
	queryTo   = "to"
)

type Handler struct {
	service service.Finance
	otel    otel.Otel
}

func New(service service.Finance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) trace(r *http.Request, endpoint string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+endpoint)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/income", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateIncome)
		routerGroup.Get("/", handler.GetIncome)
		routerGroup.Delete("/{id}", handler.DeleteIncome)
	})

	router.Route("/expenses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExpense)
		routerGroup.Get("/", handler.GetExpenses)
		routerGroup.Delete("/{id}", handler.DeleteExpense)
	})

	router.Get("/finance/summary", handler.GetSummary)
}

func periodFromRequest(r *http.Request) (dto.Period, error) {
	query := r.URL.Query()
	period := dto.Period{From: query.Get(queryFrom), To: query.Get(queryTo)}

	if err := period.Validate(); err != nil {
		return period, failure.BadRequest(err) // nolint:wrapcheck
	}

	return period, nil
}

// ledgerParams pages a ledger by record date, newest first. Ledgers only sort by date
// or amount.
func ledgerParams(r *http.Request, table string) gDto.QueryParams {
	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	switch params.SortBy {
	case model.FieldAmount, model.FieldCreatedAt:
	default:
		params.SortBy = model.FieldDate
	}

	params.SortBy = table + "." + params.SortBy

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	return params
}

// CreateIncome records money received.
// @Summary Record income
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateIncomeRequest true "Income record"
// @Success 201 {object} response.Data[dto.IncomeResponse]
// @Failure 400 {object} response.Error
// @Router /v1/income [post]
// @Security BearerAuth
func (handler *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "CreateIncome")
	defer scope.End()

	req := dto.CreateIncomeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	income, err := handler.service.CreateIncome(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to record income")

		return
	}

	scope.AddEvent("Income recorded by user " + shared.UserID(ctx))

	response.WithJSON(w, http.StatusCreated, income)
}

// GetIncome lists income records.
// @Summary List income
// @Tags Finance
// @Produce json
// @Param pagination query gDto.QueryParams false "Paging and sort_by (date, amount, created_at)"
// @Param source query string false "Exact source"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetIncomeResponse]
// @Failure 400 {object} response.Error
// @Router /v1/income [get]
// @Security BearerAuth
func (handler *Handler) GetIncome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetIncome")
	defer scope.End()

	period, err := periodFromRequest(r)
	if err != nil {
		response.Fail(w, scope, err, "invalid period")

		return
	}

	filter := gDto.All(period.Filter(model.IncomeTableName))
	filter.FromQuery(r.URL.Query(), model.IncomeTableName, gDto.FilterOperatorEq, model.FieldSource)

	income, err := handler.service.GetIncome(ctx, ledgerParams(r, model.IncomeTableName), filter)
	if err != nil {
		response.Fail(w, scope, err, "failed to list income")

		return
	}

	response.WithJSON(w, http.StatusOK, income)
}

// DeleteIncome removes a mistaken income record.
// @Summary Delete income
// @Tags Finance
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/income/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeleteIncome")
	defer scope.End()

	if err := handler.service.DeleteIncome(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete income")

		return
	}

	scope.AddEvent("Income deleted by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Income record deleted successfully")
}

// CreateExpense records money spent.
// @Summary Record an expense
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense record"
// @Success 201 {object} response.Data[dto.ExpenseResponse]
// @Failure 400 {object} response.Error
// @Router /v1/expenses [post]
// @Security BearerAuth
func (handler *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "CreateExpense")
	defer scope.End()

	req := dto.CreateExpenseRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	expense, err := handler.service.CreateExpense(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to record expense")

		return
	}

	scope.AddEvent("Expense recorded by user " + shared.UserID(ctx))

	response.WithJSON(w, http.StatusCreated, expense)
}

// GetExpenses lists expense records.
// @Summary List expenses
// @Tags Finance
// @Produce json
// @Param pagination query gDto.QueryParams false "Paging and sort_by (date, amount, created_at)"
// @Param category query string false "Exact category"
// @Param vendor query string false "Vendor substring"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetExpensesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/expenses [get]
// @Security BearerAuth
func (handler *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetExpenses")
	defer scope.End()

	period, err := periodFromRequest(r)
	if err != nil {
		response.Fail(w, scope, err, "invalid period")

		return
	}

	query := r.URL.Query()
	filter := gDto.All(period.Filter(model.ExpenseTableName))
	filter.FromQuery(query, model.ExpenseTableName, gDto.FilterOperatorEq, model.FieldCategory)
	filter.FromQuery(query, model.ExpenseTableName, gDto.FilterOperatorLike, model.FieldVendor)

	expenses, err := handler.service.GetExpenses(ctx, ledgerParams(r, model.ExpenseTableName), filter)
	if err != nil {
		response.Fail(w, scope, err, "failed to list expenses")

		return
	}

	response.WithJSON(w, http.StatusOK, expenses)
}

// DeleteExpense removes a mistaken expense record.
// @Summary Delete an expense
// @Tags Finance
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/expenses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeleteExpense")
	defer scope.End()

	if err := handler.service.DeleteExpense(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete expense")

		return
	}

	scope.AddEvent("Expense deleted by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Expense record deleted successfully")
}

// GetSummary totals income and expenses over an optional period.
// @Summary Financial summary
// @Tags Finance
// @Produce json
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Router /v1/finance/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetSummary")
	defer scope.End()

	period, err := periodFromRequest(r)
	if err != nil {
		response.Fail(w, scope, err, "invalid period")

		return
	}

	summary, err := handler.service.Summary(ctx, period)
	if err != nil {
		response.Fail(w, scope, err, "failed to summarise finances")

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}
