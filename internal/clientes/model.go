package clientes

import (
	"github.com/AlexLPinheiro/SistemaLoja/internal/pedidos"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Cliente is a client record. TotalGasto is server-computed; the Pedidos
// slice is only populated by the detail endpoint.
type Cliente struct {
	ID           int64            `json:"id"`
	NomeCompleto string           `json:"nome_completo"`
	Telefone     string           `json:"telefone"`
	Endereco     string           `json:"endereco"`
	TotalGasto   api.Decimal      `json:"total_gasto"`
	Pedidos      []pedidos.Pedido `json:"pedidos,omitempty"`
}

// SaveRequest is the shared create/update payload. Updates are a full
// replace of the three editable fields.
type SaveRequest struct {
	NomeCompleto string `json:"nome_completo"`
	Telefone     string `json:"telefone"`
	Endereco     string `json:"endereco"`
}
