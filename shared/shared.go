package shared

import "resort/shared/dto"

// CalculateTotalPage never reports fewer than one page so empty listings still render.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// FilterByID matches one row by its primary key column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.All(dto.Where(table, fieldID, dto.FilterOperatorEq, id))
}
