package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorPrefix    = "prefix"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like prefix in not_eq less_eq greater_eq is_null is_not_null"`
	Table    string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where builds a single-column predicate.
func Where(table, field, operator string, value any) Filter {
	return Filter{Table: table, Field: field, Operator: operator, Value: value}
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

// Sqlizer renders the filter as a squirrel predicate. Unknown operators yield nil.
func (f Filter) Sqlizer() sq.Sqlizer {
	column := f.column()

	switch f.Operator {
	case FilterOperatorEq, FilterOperatorIn:
		// squirrel expands slices into IN lists
		return sq.Eq{column: f.Value}
	case FilterOperatorLike:
		return sq.ILike{column: fmt.Sprintf("%%%v%%", f.Value)}
	case FilterOperatorPrefix:
		return sq.Like{column: likeEscaper.Replace(fmt.Sprint(f.Value)) + "%"}
	case FilterOperatorNotEq:
		return sq.NotEq{column: f.Value}
	case FilterOperatorLessEq:
		return sq.LtOrEq{column: f.Value}
	case FilterOperatorGreaterEq:
		return sq.GtOrEq{column: f.Value}
	case FilterIsNull:
		return sq.Eq{column: nil}
	case FilterIsNotNull:
		return sq.NotEq{column: nil}
	default:
		return nil
	}
}

// FilterGroup combines Filter and nested FilterGroup values with one operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// All joins filters with AND.
func All(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: filters}
}

// FromQuery appends one filter per field present in query, comparing with operator.
// Query keys are the column names.
func (g *FilterGroup) FromQuery(query url.Values, table, operator string, fields ...string) {
	for _, field := range fields {
		if value := query.Get(field); value != "" {
			g.Filters = append(g.Filters, Where(table, field, operator, value))
		}
	}
}

// FlagsFromQuery appends an equality filter for every field that parses as a bool.
func (g *FilterGroup) FlagsFromQuery(query url.Values, table string, fields ...string) {
	for _, field := range fields {
		if flag, err := strconv.ParseBool(query.Get(field)); err == nil {
			g.Filters = append(g.Filters, Where(table, field, FilterOperatorEq, flag))
		}
	}
}

// Sqlizer returns nil when the group holds no usable predicate.
func (g FilterGroup) Sqlizer() sq.Sqlizer {
	parts := make([]sq.Sqlizer, 0, len(g.Filters))

	for _, filter := range g.Filters {
		var part sq.Sqlizer

		switch fill := filter.(type) {
		case Filter:
			part = fill.Sqlizer()
		case FilterGroup:
			part = fill.Sqlizer()
		}

		if part != nil {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return nil
	}

	if g.Operator == FilterGroupOperatorOr {
		return sq.Or(parts)
	}

	return sq.And(parts)
}

// ToSQL renders the whole group with ? placeholders. An empty group renders "".
func (g FilterGroup) ToSQL() (string, []any, error) {
	pred := g.Sqlizer()
	if pred == nil {
		return "", nil, nil
	}

	query, args, err := pred.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render filter: %w", err)
	}

	return query, args, nil
}
