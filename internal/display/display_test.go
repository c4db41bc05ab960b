package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{1.4, 0, "1"},
		{2.5, 0, "3"},
		{9.99, 0, "10"},
		{3.14159, 2, "3.14"},
		{0.125, 1, "0.1"},
		{15, 2, "15.00"},
		{2000000, 0, "2000000"},
		{7.5, -1, "8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.value, tt.decimals), "Number(%v, %d)", tt.value, tt.decimals)
	}
}

func TestNumberIdempotent(t *testing.T) {
	values := []float64{0, 0.004, 1.5, 12.345678, 99.95, 1234567.891}
	for _, decimals := range []int{0, 1, 2, 3} {
		for _, v := range values {
			once := Number(v, decimals)
			parsed, err := Parse(once)
			require.NoError(t, err)
			assert.Equal(t, once, Number(parsed, decimals), "value %v decimals %d", v, decimals)
		}
	}
}
