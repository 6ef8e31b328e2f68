package pedidos

import (
	"errors"

	"github.com/AlexLPinheiro/SistemaLoja/internal/money"
)

// ErrSemItens blocks submission of a draft whose rows all lack a product.
// No request reaches the backend in that case.
var ErrSemItens = errors.New("pedido sem itens: selecione ao menos um produto")

// DraftRow is one line of the order form as typed. ProdutoID zero means the
// row's product select was left on the placeholder.
type DraftRow struct {
	ProdutoID  int64
	Quantidade int
	Margem     string
}

// Draft accumulates the order form state before submission.
type Draft struct {
	ClienteID            int64
	MetodoPagamento      string
	QuantidadeParcelas   int
	DiaVencimentoParcela int
	ValorServico         string
	Rows                 []DraftRow
}

// Build turns the draft into the creation payload:
//   - rows without a selected product are dropped;
//   - an empty result is a blocking error;
//   - cash ("a_vista") always carries exactly 1 installment, whatever was
//     typed; installments require at least 2;
//   - new orders always start unpaid.
func (d Draft) Build() (*CreateRequest, error) {
	itens := make([]ItemRequest, 0, len(d.Rows))
	for _, row := range d.Rows {
		if row.ProdutoID <= 0 {
			continue
		}
		qtd := row.Quantidade
		if qtd < 1 {
			qtd = 1
		}
		itens = append(itens, ItemRequest{
			ProdutoID:           row.ProdutoID,
			Quantidade:          qtd,
			MargemVendaUnitaria: money.Parse(row.Margem),
		})
	}
	if len(itens) == 0 {
		return nil, ErrSemItens
	}

	metodo := d.MetodoPagamento
	if metodo != MetodoParcelado {
		metodo = MetodoAVista
	}
	parcelas := d.QuantidadeParcelas
	if metodo == MetodoAVista {
		parcelas = 1
	} else if parcelas < 2 {
		parcelas = 2
	}

	req := &CreateRequest{
		ClienteID:          d.ClienteID,
		MetodoPagamento:    metodo,
		QuantidadeParcelas: parcelas,
		StatusPagamento:    StatusNaoPago,
		ValorServico:       money.Parse(d.ValorServico),
		Itens:              itens,
	}
	if metodo == MetodoParcelado && d.DiaVencimentoParcela >= 1 && d.DiaVencimentoParcela <= 31 {
		req.DiaVencimentoParcela = d.DiaVencimentoParcela
	}
	return req, nil
}
