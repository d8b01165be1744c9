package dto_test

import (
	"net/url"
	"resort/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterGroup_ToSQL(t *testing.T) {
	monthStart := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
		},
		{
			name: "empty nested group and unknown operator are skipped",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.FilterGroup{},
					dto.Filter{Field: "code", Operator: "between", Value: 1},
					dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull, Table: "packages"},
				},
			},
			wantWhere: "(packages.deleted_at IS NULL)",
		},
		{
			name: "monthly reference window",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "accommodation_id", Operator: dto.FilterOperatorEq, Value: "acc-1", Table: "bookings"},
					dto.Filter{Field: "created_at", Operator: dto.FilterOperatorGreaterEq, Value: monthStart, Table: "bookings"},
					dto.Filter{Field: "created_at", Operator: dto.FilterOperatorLessEq, Value: monthEnd, Table: "bookings"},
				},
			},
			wantWhere: "(bookings.accommodation_id = ? AND bookings.created_at >= ? AND bookings.created_at <= ?)",
			wantArgs:  []any{"acc-1", monthStart, monthEnd},
		},
		{
			name: "status list or guest search",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"pending", "confirmed"}},
					dto.Filter{Field: "guest_email", Operator: dto.FilterOperatorLike, Value: "reyes"},
				},
			},
			wantWhere: "(status IN (?,?) OR guest_email ILIKE ?)",
			wantArgs:  []any{"pending", "confirmed", "%reyes%"},
		},
		{
			name: "reference prefix escapes LIKE wildcards",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "booking_reference", Operator: dto.FilterOperatorPrefix, Value: "A_B-STD-2610-", Table: "bookings"},
				},
			},
			wantWhere: "(bookings.booking_reference LIKE ?)",
			wantArgs:  []any{`A\_B-STD-2610-%`},
		},
		{
			name: "nested groups keep their own operator",
			group: dto.FilterGroup{
				Filters: []any{
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorOr,
						Filters: []any{
							dto.Filter{Field: "is_active", Operator: dto.FilterOperatorEq, Value: true},
							dto.Filter{Field: "is_featured", Operator: dto.FilterOperatorEq, Value: true},
						},
					},
					dto.Filter{Field: "image_url", Operator: dto.FilterIsNotNull},
					dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
				},
			},
			wantWhere: "((is_active = ? OR is_featured = ?) AND image_url IS NOT NULL AND status <> ?)",
			wantArgs:  []any{true, true, "cancelled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := tt.group.ToSQL()
			require.NoError(t, err)

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_FromQuery(t *testing.T) {
	query := url.Values{
		"status":      {"confirmed"},
		"guest_email": {"ayu"},
		"is_active":   {"true"},
		"is_featured": {"maybe"},
	}

	group := dto.All()
	group.FromQuery(query, "bookings", dto.FilterOperatorEq, "status", "accommodation_id")
	group.FromQuery(query, "bookings", dto.FilterOperatorLike, "guest_email")
	group.FlagsFromQuery(query, "bookings", "is_active", "is_featured")

	where, args, err := group.ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "(bookings.status = ? AND bookings.guest_email ILIKE ? AND bookings.is_active = ?)", where)
	assert.Equal(t, []any{"confirmed", "%ayu%", true}, args)
}
