package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{5.9, "R$ 5,90"},
		{1234.56, "R$ 1.234,56"},
		{1250, "R$ 1.250,00"},
		{math.NaN(), "R$ 0,00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBRL(tc.in))
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$15.00", FormatUSD(15))
	assert.Equal(t, "$1,234.56", FormatUSD(1234.56))
	assert.Equal(t, "$0.00", FormatUSD(math.Inf(1)))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"15.00", 15},
		{"1234,56", 1234.56},
		{"1.234,56", 1234.56},
		{"", 0},
		{"abc", 0},
		{"  5.9 ", 5.9},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.in), "input %q", tc.in)
	}
}
