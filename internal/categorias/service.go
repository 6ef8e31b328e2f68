package categorias

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Service validates input and delegates to the backend. Uniqueness is the
// backend's call; only presence is checked here.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

type createForm struct {
	Nome string `validate:"required"`
}

func (s *Service) List(ctx context.Context) ([]Categoria, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, nome string) (*Categoria, error) {
	nome = strings.TrimSpace(nome)
	if err := s.validate.Struct(createForm{Nome: nome}); err != nil {
		return nil, &api.FieldError{Field: "nome", Message: "O nome da categoria não pode estar vazio."}
	}
	return s.repo.Create(ctx, CreateRequest{Nome: nome})
}
