package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`"5.90"`, 5.9},
		{`5.9`, 5.9},
		{`"0.00"`, 0},
		{`null`, 0},
		{`""`, 0},
		{`"abc"`, 0},
	}
	for _, tc := range cases {
		var d Decimal
		require.NoError(t, json.Unmarshal([]byte(tc.in), &d), "input %s", tc.in)
		assert.Equal(t, tc.want, d.Float(), "input %s", tc.in)
	}
}

func TestDecimalMarshal(t *testing.T) {
	out, err := json.Marshal(Decimal(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(out))
}
