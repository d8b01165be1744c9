package dto_test

import (
	"resort/internal/domains/finance/model"
	"resort/internal/domains/finance/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_Filter(t *testing.T) {
	t.Run("open period", func(t *testing.T) {
		query, _, err := dto.Period{}.Filter(model.IncomeTableName).ToSQL()

		require.NoError(t, err)
		assert.Empty(t, query)
	})

	t.Run("both ends included", func(t *testing.T) {
		query, args, err := dto.Period{From: "2026-10-01", To: "2026-10-31"}.Filter(model.ExpenseTableName).ToSQL()

		require.NoError(t, err)
		assert.Equal(t, "(expense_records.date >= ? AND expense_records.date <= ?)", query)
		assert.Equal(t, []any{"2026-10-01", "2026-10-31"}, args)
	})
}

func TestPeriod_Validate(t *testing.T) {
	assert.NoError(t, dto.Period{}.Validate())
	assert.NoError(t, dto.Period{From: "2026-10-01"}.Validate())
	assert.NoError(t, dto.Period{From: "2026-10-01", To: "2026-10-01"}.Validate())
	assert.Error(t, dto.Period{To: "31/10/2026"}.Validate())
	assert.Error(t, dto.Period{From: "2026-10-02", To: "2026-10-01"}.Validate())
}
