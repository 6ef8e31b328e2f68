package produtos

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AlexLPinheiro/SistemaLoja/internal/money"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Form carries the raw field values of the add/edit product forms.
type Form struct {
	Nome             string `validate:"required"`
	Marca            string `validate:"required"`
	PrecoDolar       string `validate:"required"`
	CategoriaID      int64  `validate:"required,gt=0"`
	EstoqueInicial   string
	AdicionarEstoque string
}

// Service validates product forms and delegates to the backend. Stock and
// price rules (non-negative stock, decrement on sale) are enforced
// server-side; only presence is checked here.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) List(ctx context.Context, search string) ([]Produto, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) Create(ctx context.Context, form Form) (*Produto, error) {
	if err := s.checkPresence(form); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, CreateRequest{
		Nome:              strings.TrimSpace(form.Nome),
		Marca:             strings.TrimSpace(form.Marca),
		PrecoDolar:        money.Parse(form.PrecoDolar),
		CategoriaID:       form.CategoriaID,
		QuantidadeEstoque: parseEstoque(form.EstoqueInicial),
	})
}

// Update sends the edited fields plus the stock delta. The blank or
// non-numeric delta means "add nothing".
func (s *Service) Update(ctx context.Context, id int64, form Form) error {
	if err := s.checkPresence(form); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, UpdateRequest{
		Nome:             strings.TrimSpace(form.Nome),
		Marca:            strings.TrimSpace(form.Marca),
		PrecoDolar:       money.Parse(form.PrecoDolar),
		CategoriaID:      form.CategoriaID,
		AdicionarEstoque: parseEstoque(form.AdicionarEstoque),
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkPresence(form Form) error {
	form.Nome = strings.TrimSpace(form.Nome)
	form.Marca = strings.TrimSpace(form.Marca)
	form.PrecoDolar = strings.TrimSpace(form.PrecoDolar)
	if err := s.validate.Struct(form); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Nome":
				return &api.FieldError{Field: "nome", Message: "O nome do produto é obrigatório."}
			case "Marca":
				return &api.FieldError{Field: "marca", Message: "A marca é obrigatória."}
			case "PrecoDolar":
				return &api.FieldError{Field: "preco_dolar", Message: "O preço em dólar é obrigatório."}
			case "CategoriaID":
				return &api.FieldError{Field: "categoria_id", Message: "Selecione uma categoria."}
			}
		}
		return &api.GenericError{Message: "Dados do produto inválidos."}
	}
	return nil
}

func parseEstoque(s string) int {
	n := int(money.Parse(s))
	if n < 0 {
		return 0
	}
	return n
}
