package produtos

import "github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"

// Produto is a product as read from the backend. Cost in BRL and the sales
// counter are server-derived; the category arrives denormalized as a name.
type Produto struct {
	ID                int64       `json:"id"`
	Nome              string      `json:"nome"`
	Marca             string      `json:"marca"`
	Categoria         string      `json:"categoria"`
	PrecoDolar        api.Decimal `json:"preco_dolar"`
	PrecoRealCusto    api.Decimal `json:"preco_real_custo"`
	QuantidadeEstoque int         `json:"quantidade_estoque"`
	QuantidadeVendas  int         `json:"quantidade_vendas"`
}

// EmEstoque reports whether the product can still be sold.
func (p Produto) EmEstoque() bool {
	return p.QuantidadeEstoque > 0
}

// CreateRequest is the creation payload. Initial stock is optional.
type CreateRequest struct {
	Nome              string  `json:"nome"`
	Marca             string  `json:"marca"`
	PrecoDolar        float64 `json:"preco_dolar"`
	CategoriaID       int64   `json:"categoria_id"`
	QuantidadeEstoque int     `json:"quantidade_estoque,omitempty"`
}

// UpdateRequest is the edit payload. Stock changes are additive: only the
// delta to add travels, never a recomputed total, so concurrent stock
// movements on the backend are not overwritten.
type UpdateRequest struct {
	Nome             string  `json:"nome"`
	Marca            string  `json:"marca"`
	PrecoDolar       float64 `json:"preco_dolar"`
	CategoriaID      int64   `json:"categoria_id"`
	AdicionarEstoque int     `json:"adicionar_estoque"`
}
