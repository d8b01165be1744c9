package model

import (
	"resort/shared/model"
	"time"
)

const (
	IncomeTableName   = "income_records"
	IncomeEntityName  = "income_record"
	ExpenseTableName  = "expense_records"
	ExpenseEntityName = "expense_record"

	FieldID          = "id"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldSource      = "source"
	FieldCategory    = "category"
	FieldVendor      = "vendor"
	FieldCreatedAt   = "created_at"
)

// Income sources.
const (
	SourceBooking = "booking"
	SourceExtras  = "extras"
	SourceOther   = "other"
)

// Expense categories.
const (
	CategoryMaintenance = "maintenance"
	CategorySupplies    = "supplies"
	CategoryUtilities   = "utilities"
	CategoryStaff       = "staff"
	CategoryMarketing   = "marketing"
	CategoryOther       = "other"
)

type Income struct {
	ID          string    `db:"id"`
	Amount      float64   `db:"amount"`
	Source      string    `db:"source"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	model.Metadata
}

type Expense struct {
	ID          string    `db:"id"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	Vendor      string    `db:"vendor"`
	Date        time.Time `db:"date"`
	model.Metadata
}
