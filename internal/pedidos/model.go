package pedidos

import (
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
	"github.com/AlexLPinheiro/SistemaLoja/internal/produtos"
)

// Payment and delivery statuses used on the wire.
const (
	StatusPago        = "pago"
	StatusNaoPago     = "nao_pago"
	StatusEmAtraso    = "em_atraso"
	StatusEmDia       = "em_dia"
	StatusEntregue    = "entregue"
	StatusNaoEntregue = "nao_entregue"

	MetodoAVista    = "a_vista"
	MetodoParcelado = "parcelado"
)

// Pedido is an order as the backend returns it. All monetary totals are
// server-computed and displayed verbatim.
type Pedido struct {
	ID                   int64       `json:"id"`
	Cliente              string      `json:"cliente"`
	DataPedido           string      `json:"data_pedido"`
	MetodoPagamento      string      `json:"metodo_pagamento"`
	QuantidadeParcelas   int         `json:"quantidade_parcelas"`
	DiaVencimentoParcela int         `json:"dia_vencimento_parcela"`
	StatusPagamento      string      `json:"status_pagamento"`
	StatusEntrega        string      `json:"status_entrega"`
	StatusPedido         string      `json:"status_pedido"`
	Subtotal             api.Decimal `json:"subtotal"`
	ValorServico         api.Decimal `json:"valor_servico"`
	LucroFinal           api.Decimal `json:"lucro_final"`
	Itens                []Item      `json:"itens"`
}

// Item is an order line. Unit sale price and profit come server-derived.
type Item struct {
	ID                 int64            `json:"id"`
	Produto            produtos.Produto `json:"produto"`
	Quantidade         int              `json:"quantidade"`
	PrecoVendaUnitario api.Decimal      `json:"preco_venda_unitario"`
	LucroItem          api.Decimal      `json:"lucro_item"`
}

// Pago reports whether the order's payment toggle is in the paid position.
func (p Pedido) Pago() bool {
	return p.StatusPagamento == StatusPago
}

// Entregue reports whether the order has been delivered.
func (p Pedido) Entregue() bool {
	return p.StatusEntrega == StatusEntregue
}

// CreateRequest is the order creation payload, produced by Draft.Build.
type CreateRequest struct {
	ClienteID            int64         `json:"cliente_id"`
	MetodoPagamento      string        `json:"metodo_pagamento"`
	QuantidadeParcelas   int           `json:"quantidade_parcelas"`
	DiaVencimentoParcela int           `json:"dia_vencimento_parcela,omitempty"`
	StatusPagamento      string        `json:"status_pagamento"`
	ValorServico         float64       `json:"valor_servico"`
	Itens                []ItemRequest `json:"itens"`
}

type ItemRequest struct {
	ProdutoID           int64   `json:"produto_id"`
	Quantidade          int     `json:"quantidade"`
	MargemVendaUnitaria float64 `json:"margem_venda_unitaria"`
}

// StatusPatch updates exactly one of the two status fields. The unset field
// must stay off the wire, so both are pointers with omitempty.
type StatusPatch struct {
	StatusPagamento *string `json:"status_pagamento,omitempty"`
	StatusEntrega   *string `json:"status_entrega,omitempty"`
}
