package model

import "resort/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldIcon        = "icon"
	FieldIsActive    = "is_active"

	ConstraintNameUnique = "amenities_name_key"
)

type Amenity struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}
