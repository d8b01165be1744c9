package dto

import (
	"fmt"
	"resort/internal/domains/finance/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"
	"time"

	"github.com/google/uuid"
)

func metadata(user string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}

	return date, nil
}

type CreateIncomeRequest struct {
	Amount      float64 `json:"amount"      validate:"gt=0"`
	Source      string  `json:"source"      validate:"required,oneof=booking extras other"`
	Description string  `json:"description" validate:"required,max=1000"`
	Date        string  `json:"date"        validate:"required,date"`
}

func (c *CreateIncomeRequest) ToModel(user string) (model.Income, error) {
	date, err := parseDate(model.FieldDate, c.Date)
	if err != nil {
		return model.Income{}, err
	}

	return model.Income{
		ID:          uuid.NewString(),
		Amount:      c.Amount,
		Source:      c.Source,
		Description: c.Description,
		Date:        date,
		Metadata:    metadata(user),
	}, nil
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"      validate:"gt=0"`
	Category    string  `json:"category"    validate:"required,oneof=maintenance supplies utilities staff marketing other"`
	Description string  `json:"description" validate:"required,max=1000"`
	Vendor      string  `json:"vendor"      validate:"omitempty,max=255"`
	Date        string  `json:"date"        validate:"required,date"`
}

func (c *CreateExpenseRequest) ToModel(user string) (model.Expense, error) {
	date, err := parseDate(model.FieldDate, c.Date)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		ID:          uuid.NewString(),
		Amount:      c.Amount,
		Category:    c.Category,
		Description: c.Description,
		Vendor:      c.Vendor,
		Date:        date,
		Metadata:    metadata(user),
	}, nil
}

type IncomeResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	gDto.Metadata
}

func (r *IncomeResponse) FromModel(model model.Income) {
	r.ID = model.ID
	r.Amount = model.Amount
	r.Source = model.Source
	r.Description = model.Description
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Vendor      string  `json:"vendor"`
	Date        string  `json:"date"`
	gDto.Metadata
}

func (r *ExpenseResponse) FromModel(model model.Expense) {
	r.ID = model.ID
	r.Amount = model.Amount
	r.Category = model.Category
	r.Description = model.Description
	r.Vendor = model.Vendor
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetIncomeResponse struct {
	Income    []IncomeResponse `json:"income"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetIncomeResponse) FromModels(models []model.Income, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Income = make([]IncomeResponse, len(models))
	for i, mod := range models {
		r.Income[i].FromModel(mod)
	}
}

type GetExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetExpensesResponse) FromModels(models []model.Expense, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Expenses = make([]ExpenseResponse, len(models))
	for i, mod := range models {
		r.Expenses[i].FromModel(mod)
	}
}

// Period bounds a report by record date. Empty bounds are open.
type Period struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Validate rejects malformed bounds and a period that ends before it starts.
func (p Period) Validate() error {
	var from, to time.Time

	var err error

	if p.From != constant.Empty {
		if from, err = parseDate("from", p.From); err != nil {
			return err
		}
	}

	if p.To != constant.Empty {
		if to, err = parseDate("to", p.To); err != nil {
			return err
		}
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return fmt.Errorf("to %s is before from %s", p.To, p.From)
	}

	return nil
}

// Filter restricts table to records dated inside the period, both ends included.
func (p Period) Filter(table string) gDto.FilterGroup {
	filter := gDto.All()

	if p.From != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Where(table, model.FieldDate, gDto.FilterOperatorGreaterEq, p.From))
	}

	if p.To != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Where(table, model.FieldDate, gDto.FilterOperatorLessEq, p.To))
	}

	return filter
}

type SummaryResponse struct {
	Period
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}
