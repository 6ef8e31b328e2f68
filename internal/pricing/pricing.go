// Package pricing holds the one authoritative cost/profit preview
// computation for order entry. Earlier form revisions each carried their own
// drifted copy of this arithmetic; they are consolidated here behind a
// versioned contract so the formula can only change in one place.
//
// Formula v2: the exchange rate supplied by the dashboard endpoint already
// includes currency-conversion fees; the regional purchase surcharge (6.5%
// for goods bought in Florida) is applied locally on top of it.
//
// Every value produced here is a preview. Authoritative totals are computed
// server-side; only raw inputs (product, quantity, margin) are ever
// submitted.
package pricing

import "math"

// FormulaVersion identifies the consolidated preview formula in use.
const FormulaVersion = 2

const (
	// CotacaoFallback is the exchange rate used when the dashboard
	// snapshot cannot be fetched.
	CotacaoFallback = 5.80

	// TaxaFlorida is the purchase surcharge for the Florida buying route.
	TaxaFlorida = 0.065

	// FatorFlorida multiplies the fee-inclusive rate to obtain the final
	// landed cost factor.
	FatorFlorida = 1 + TaxaFlorida
)

// Quote carries the raw inputs for one order line preview.
type Quote struct {
	PrecoDolar float64 // product cost price in USD
	Cotacao    float64 // fee-inclusive exchange rate of the day
	Fator      float64 // regional surcharge factor; zero means none (1.0)
	Quantidade int
	Margem     float64 // per-unit markup added by the seller, in BRL
}

// Round2 rounds to two decimal places, the precision of every displayed
// monetary value.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (q Quote) sane() Quote {
	if q.PrecoDolar < 0 || math.IsNaN(q.PrecoDolar) {
		q.PrecoDolar = 0
	}
	if q.Cotacao <= 0 || math.IsNaN(q.Cotacao) {
		q.Cotacao = CotacaoFallback
	}
	if q.Fator < 1 || math.IsNaN(q.Fator) {
		q.Fator = 1
	}
	if q.Quantidade < 0 {
		q.Quantidade = 0
	}
	if q.Margem < 0 || math.IsNaN(q.Margem) {
		q.Margem = 0
	}
	return q
}

// UnitCostBRL is the landed cost of one unit in local currency:
// dollar price × exchange rate × surcharge factor.
func (q Quote) UnitCostBRL() float64 {
	q = q.sane()
	return q.PrecoDolar * q.Cotacao * q.Fator
}

// LineCostBRL is the landed cost of the full line, rounded for display.
func (q Quote) LineCostBRL() float64 {
	q = q.sane()
	return Round2(q.UnitCostBRL() * float64(q.Quantidade))
}

// LineCostUSD is the dollar cost of the full line, rounded for display.
func (q Quote) LineCostUSD() float64 {
	q = q.sane()
	return Round2(q.PrecoDolar * float64(q.Quantidade))
}

// UnitSalePreview estimates the realized per-unit sale value: landed unit
// cost plus the seller's margin. Informational only; the backend derives the
// actual sale price.
func (q Quote) UnitSalePreview() float64 {
	q = q.sane()
	return Round2(q.UnitCostBRL() + q.Margem)
}

// Florida builds a quote for the Florida buying route, the only regional
// variant that applies a local surcharge.
func Florida(precoDolar, cotacao float64, quantidade int, margem float64) Quote {
	return Quote{
		PrecoDolar: precoDolar,
		Cotacao:    cotacao,
		Fator:      FatorFlorida,
		Quantidade: quantidade,
		Margem:     margem,
	}
}
