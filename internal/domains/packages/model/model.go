package model

import (
	"resort/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID           = "id"
	FieldCode         = "code"
	FieldName         = "name"
	FieldPrice        = "price"
	FieldIsActive     = "is_active"
	FieldIsFeatured   = "is_featured"
	FieldDeletedAt    = "deleted_at"
	FieldMaxOccupancy = "max_occupancy"

	ConstraintCodeUnique = "packages_code_key"
)

type Package struct {
	ID           string         `db:"id"`
	Code         string         `db:"code"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Price        float64        `db:"price"`
	DurationDays int            `db:"duration_days"`
	MaxOccupancy int            `db:"max_occupancy"`
	Includes     pq.StringArray `db:"includes"`
	IsActive     bool           `db:"is_active"`
	IsFeatured   bool           `db:"is_featured"`
	DeletedAt    *time.Time     `db:"deleted_at"`
	model.Metadata
}
