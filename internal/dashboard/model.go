package dashboard

import "github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"

// Snapshot aggregates the home page numbers. The exchange rate already
// includes the purchase fee, so it can be multiplied straight into cost
// previews.
type Snapshot struct {
	LucroDoPeriodo  api.Decimal `json:"lucro_do_periodo"`
	GastosDoPeriodo api.Decimal `json:"gastos_do_periodo"`
	CotacaoDolarDia api.Decimal `json:"cotacao_dolar_dia"`
	PedidosEmAberto int         `json:"pedidos_em_aberto"`
}
