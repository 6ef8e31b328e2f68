package clientes

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Form carries the raw client form fields. The UI asks for first and last
// name separately; they are combined into nome_completo before the wire.
type Form struct {
	PrimeiroNome string `validate:"required"`
	Sobrenome    string `validate:"required"`
	Telefone     string `validate:"required"`
	Endereco     string `validate:"required"`
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) List(ctx context.Context, search string) ([]Cliente, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) Get(ctx context.Context, id int64) (*Cliente, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, form Form) (*Cliente, error) {
	req, err := s.buildRequest(form)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *req)
}

// EditForm is the in-place edit on the detail page; the name is edited as a
// single field there.
type EditForm struct {
	NomeCompleto string `validate:"required"`
	Telefone     string `validate:"required"`
	Endereco     string `validate:"required"`
}

// Update replaces the editable fields. The caller applies the returned
// record directly instead of re-fetching.
func (s *Service) Update(ctx context.Context, id int64, form EditForm) (*Cliente, error) {
	form.NomeCompleto = strings.TrimSpace(form.NomeCompleto)
	form.Telefone = strings.TrimSpace(form.Telefone)
	form.Endereco = strings.TrimSpace(form.Endereco)

	if err := s.validate.Struct(form); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "NomeCompleto":
				return nil, &api.FieldError{Field: "nome_completo", Message: "O nome não pode estar vazio."}
			case "Telefone":
				return nil, &api.FieldError{Field: "telefone", Message: "O telefone é obrigatório."}
			case "Endereco":
				return nil, &api.FieldError{Field: "endereco", Message: "O endereço é obrigatório."}
			}
		}
		return nil, &api.GenericError{Message: "Dados do cliente inválidos."}
	}

	return s.repo.Update(ctx, id, SaveRequest{
		NomeCompleto: form.NomeCompleto,
		Telefone:     form.Telefone,
		Endereco:     form.Endereco,
	})
}

func (s *Service) buildRequest(form Form) (*SaveRequest, error) {
	form.PrimeiroNome = strings.TrimSpace(form.PrimeiroNome)
	form.Sobrenome = strings.TrimSpace(form.Sobrenome)
	form.Telefone = strings.TrimSpace(form.Telefone)
	form.Endereco = strings.TrimSpace(form.Endereco)

	if err := s.validate.Struct(form); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "PrimeiroNome":
				return nil, &api.FieldError{Field: "primeiro_nome", Message: "O primeiro nome é obrigatório."}
			case "Sobrenome":
				return nil, &api.FieldError{Field: "sobrenome", Message: "O sobrenome é obrigatório."}
			case "Telefone":
				return nil, &api.FieldError{Field: "telefone", Message: "O telefone é obrigatório."}
			case "Endereco":
				return nil, &api.FieldError{Field: "endereco", Message: "O endereço é obrigatório."}
			}
		}
		return nil, &api.GenericError{Message: "Dados do cliente inválidos."}
	}

	return &SaveRequest{
		NomeCompleto: form.PrimeiroNome + " " + form.Sobrenome,
		Telefone:     form.Telefone,
		Endereco:     form.Endereco,
	}, nil
}
