package dto_test

import (
	"net/http/httptest"
	"resort/shared/dto"
	"resort/shared/model"
	"resort/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	require.NoError(t, timezone.SetLocation("Asia/Makassar"))
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  time.Date(2026, 5, 1, 2, 0, 0, 0, time.UTC),
		ModifiedAt: time.Date(2026, 5, 2, 2, 0, 0, 0, time.UTC),
		CreatedBy:  "frontdesk@resort.test",
		ModifiedBy: "admin@resort.test",
	})

	assert.Equal(t, dto.Metadata{
		CreatedAt:  "2026-05-01T10:00:00+08:00",
		ModifiedAt: "2026-05-02T10:00:00+08:00",
		CreatedBy:  "frontdesk@resort.test",
		ModifiedBy: "admin@resort.test",
	}, metadata)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:         "all parameters",
			query:        "page=2&limit=20&sort_by=check_in_date&sort_dir=asc",
			withDefaults: true,
			want:         dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults applied",
			withDefaults: true,
			want:         dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name: "no defaults",
			want: dto.QueryParams{},
		},
		{
			name:         "malformed numbers ignored",
			query:        "page=-1&limit=many",
			withDefaults: true,
			want:         dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:  "limit capped",
			query: "limit=5000",
			want:  dto.QueryParams{Limit: 100},
		},
		{
			name:  "unknown direction ignored",
			query: "sort_dir=sideways&sort_by=%20",
			want:  dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := dto.QueryParams{}
			params.FromRequest(httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil), tt.withDefaults)

			assert.Equal(t, tt.want, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 4}.Offset())
}
