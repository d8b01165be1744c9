package model

import "resort/shared/model"

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID            = "id"
	FieldName          = "name"
	FieldType          = "type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldImageURL      = "image_url"
	FieldIsActive      = "is_active"
)

type Accommodation struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Type          string  `db:"type"`
	Description   string  `db:"description"`
	PricePerNight float64 `db:"price_per_night"`
	Capacity      int     `db:"capacity"`
	ImageURL      string  `db:"image_url"`
	IsActive      bool    `db:"is_active"`
	model.Metadata
}
