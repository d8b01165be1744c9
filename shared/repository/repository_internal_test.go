package repository

import (
	"resort/shared/dto"
	"resort/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stay struct {
	ID              string  `db:"id"`
	AccommodationID string  `db:"accommodation_id"`
	PackageID       *string `db:"package_id"`
	GuestName       string  `db:"guest_name"`
	Skipped         string
	Accommodation   string  `column:"name" db:"accommodation_name" table:"accommodations"`
	PackageName     *string `column:"name" db:"package_name"       table:"packages"`
	model.Metadata
}

func (stay) Joins() []string {
	return []string{
		"JOIN accommodations ON accommodations.id = stays.accommodation_id",
		"LEFT JOIN packages ON packages.id = stays.package_id",
	}
}

func newStayRepo() Repository[stay] {
	return NewRepository[stay]("stay", "stays", "id", nil, nil)
}

func byGuest(name string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "guest_name", Operator: dto.FilterOperatorEq, Value: name, Table: "stays"},
	}}
}

func TestNewRepository_Columns(t *testing.T) {
	repo := newStayRepo()

	assert.Equal(t, []string{
		"id", "accommodation_id", "package_id", "guest_name",
		"created_at", "modified_at", "created_by", "modified_by",
	}, repo.insertColumns)
	assert.Len(t, repo.joins, 2)
	assert.Equal(t, []string{"stays.id", "accommodations.name AS accommodation_name"}, repo.selectColumns([]string{"id", "accommodation_name"}))
}

func TestRepository_SelectQuery(t *testing.T) {
	repo := newStayRepo()

	t.Run("paged and sorted", func(t *testing.T) {
		query, args, err := repo.selectQuery(
			dto.QueryParams{Page: 3, Limit: 20, SortBy: "stays.created_at", SortDir: dto.SortDirDesc},
			byGuest("Ana"),
			"id", "package_name",
		).ToSql()
		require.NoError(t, err)

		assert.Equal(t, "SELECT stays.id, packages.name AS package_name FROM stays "+
			"JOIN accommodations ON accommodations.id = stays.accommodation_id "+
			"LEFT JOIN packages ON packages.id = stays.package_id "+
			"WHERE (stays.guest_name = $1) ORDER BY stays.created_at DESC LIMIT 20 OFFSET 40", query)
		assert.Equal(t, []any{"Ana"}, args)
	})

	t.Run("no filter", func(t *testing.T) {
		query, args, err := repo.countQuery(dto.FilterGroup{}).ToSql()
		require.NoError(t, err)

		assert.Equal(t, "SELECT COUNT(stays.id) FROM stays "+
			"JOIN accommodations ON accommodations.id = stays.accommodation_id "+
			"LEFT JOIN packages ON packages.id = stays.package_id", query)
		assert.Empty(t, args)
	})
}

func TestRepository_SumQuery(t *testing.T) {
	repo := NewRepository[stay]("stay", "stays", "id", nil, nil)
	repo.joins = nil

	query, args, err := repo.sumQuery("guests", byGuest("Ana")).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COALESCE(SUM(stays.guests), 0) FROM stays WHERE (stays.guest_name = $1)", query)
	assert.Equal(t, []any{"Ana"}, args)
}

func TestRepository_ExistQuery(t *testing.T) {
	repo := newStayRepo()

	_, err := repo.existQuery(dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	builder, err := repo.existQuery(byGuest("Ana"))
	require.NoError(t, err)

	query, _, err := builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM stays WHERE (stays.guest_name = $1) )", query)
}

func TestRepository_InsertQuery(t *testing.T) {
	repo := newStayRepo()
	created := time.Date(2026, time.May, 1, 8, 0, 0, 0, time.UTC)

	query, args, err := repo.insertQuery(stay{
		ID:              "s-1",
		AccommodationID: "a-1",
		GuestName:       "Ana",
		Accommodation:   "ignored",
		Metadata:        model.Metadata{CreatedAt: created, ModifiedAt: created, CreatedBy: "u-1", ModifiedBy: "u-1"},
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO stays (id,accommodation_id,package_id,guest_name,created_at,modified_at,created_by,modified_by) "+
		"VALUES ($1,$2,$3,$4,$5,$6,$7,$8)", query)
	assert.Equal(t, []any{"s-1", "a-1", (*string)(nil), "Ana", created, created, "u-1", "u-1"}, args)
}

func TestRepository_UpdateAndDeleteQuery(t *testing.T) {
	repo := newStayRepo()

	_, err := repo.updateQuery(map[string]any{"guest_name": "Bo"}, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	_, err = repo.updateQuery(map[string]any{}, byGuest("Ana"))
	assert.ErrorIs(t, err, errNothingToSet)

	update, err := repo.updateQuery(map[string]any{"package_id": nil, "guest_name": "Bo"}, byGuest("Ana"))
	require.NoError(t, err)

	query, args, err := update.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE stays SET guest_name = $1, package_id = $2 WHERE (stays.guest_name = $3)", query)
	assert.Equal(t, []any{"Bo", nil, "Ana"}, args)

	_, err = repo.deleteQuery(dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)

	remove, err := repo.deleteQuery(byGuest("Ana"))
	require.NoError(t, err)

	query, _, err = remove.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM stays WHERE (stays.guest_name = $1)", query)
}
