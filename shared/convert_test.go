package shared_test

import (
	"resort/shared"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	truthy, falsy := true, false

	tests := []struct {
		input string
		want  *bool
	}{
		{input: "true", want: &truthy},
		{input: " 1 ", want: &truthy},
		{input: "FALSE", want: &falsy},
		{input: "0", want: &falsy},
		{input: "", want: nil},
		{input: "   ", want: nil},
		{input: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	capacity, err := shared.ConvertStringToInt(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, capacity)

	_, err = shared.ConvertStringToInt("four")
	assert.ErrorContains(t, err, `"four"`)
}

func TestConvertStringToFloat(t *testing.T) {
	price, err := shared.ConvertStringToFloat("1250000.50")
	require.NoError(t, err)
	assert.InDelta(t, 1250000.50, price, 0.001)

	_, err = shared.ConvertStringToFloat("")
	assert.Error(t, err)
}
