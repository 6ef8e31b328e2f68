// Package money formats monetary values the way the backend's audience
// expects them: Brazilian reais in pt-BR notation and US dollars in en-US
// notation. Values arrive from the API as strings or floats; anything
// unparseable renders as zero.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ptBR = message.NewPrinter(language.BrazilianPortuguese)
	enUS = message.NewPrinter(language.AmericanEnglish)
)

func decimal(v float64) number.Formatter {
	return number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2))
}

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return ptBR.Sprintf("R$ %v", decimal(v))
}

// FormatUSD renders a value as US currency, e.g. "$1,234.56".
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return enUS.Sprintf("$%v", decimal(v))
}

// Parse reads a user- or API-supplied decimal string. Both "1234.56" and the
// Brazilian "1234,56" are accepted. Unparseable input yields zero, matching
// how the order form treats blank margin and service fields.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	if i := strings.LastIndex(s, "."); i >= 0 {
		// "1.234.56" style input keeps only the last separator as decimal.
		s = strings.ReplaceAll(s[:i], ".", "") + s[i:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
