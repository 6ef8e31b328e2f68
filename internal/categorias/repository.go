package categorias

import (
	"context"
	"fmt"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Repository abstracts the categorias resource of the remote backend.
type Repository interface {
	List(ctx context.Context) ([]Categoria, error)
	Create(ctx context.Context, req CreateRequest) (*Categoria, error)
}

// APIRepository talks to the remote REST backend.
type APIRepository struct {
	client *api.Client
}

// NewRepository builds an APIRepository over the shared client.
func NewRepository(client *api.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) List(ctx context.Context) ([]Categoria, error) {
	var out []Categoria
	if err := r.client.Get(ctx, "/categorias/", nil, &out); err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	return out, nil
}

func (r *APIRepository) Create(ctx context.Context, req CreateRequest) (*Categoria, error) {
	var out Categoria
	if err := r.client.Post(ctx, "/categorias/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
