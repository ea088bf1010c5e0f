package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_KeepsScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "19.90", want: "19.90"},
		{in: "699.00", want: "699.00"},
		{in: "1000.00", want: "1000.00"},
		{in: "799.99", want: "799.99"},
		{in: "0.50", want: "0.50"},
		{in: "42", want: "42"},
		{in: "-3.10", want: "-3.10"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			p := NewPrice(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, p.String())

			data, err := json.Marshal(p)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.want+`"`, string(data))
		})
	}
}

func TestPrice_InProductJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Product{
		ID:     1,
		Price:  NewPrice(decimal.RequireFromString("19.90")),
		Images: []string{},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":"19.90"`)
}
