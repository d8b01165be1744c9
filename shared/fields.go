package shared

import (
	"reflect"
	"resort/shared/constant"
	"resort/shared/timezone"
)

// TransformFields collects the set db-tagged fields of an update request into a column
// map and stamps the modification metadata. Zero values and nil pointers are left out;
// pointers are dereferenced so a pointer to false still clears a flag.
func TransformFields(data any, username string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any, typ.NumField()+2)

	for index := range typ.NumField() {
		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[column] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}
