package pedidos

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Repository abstracts the pedidos resource of the remote backend.
type Repository interface {
	List(ctx context.Context, search string) ([]Pedido, error)
	Create(ctx context.Context, req CreateRequest) (*Pedido, error)
	UpdateStatus(ctx context.Context, id int64, patch StatusPatch) (*Pedido, error)
	Delete(ctx context.Context, id int64) error
}

type APIRepository struct {
	client *api.Client
}

func NewRepository(client *api.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) List(ctx context.Context, search string) ([]Pedido, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	var out []Pedido
	if err := r.client.Get(ctx, "/pedidos/", query, &out); err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return out, nil
}

func (r *APIRepository) Create(ctx context.Context, req CreateRequest) (*Pedido, error) {
	var out Pedido
	if err := r.client.Post(ctx, "/pedidos/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus patches a single status field and returns the updated order as
// confirmed by the server.
func (r *APIRepository) UpdateStatus(ctx context.Context, id int64, patch StatusPatch) (*Pedido, error) {
	var out Pedido
	path := "/pedidos/" + strconv.FormatInt(id, 10) + "/atualizar-status/"
	if err := r.client.Patch(ctx, path, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *APIRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, "/pedidos/"+strconv.FormatInt(id, 10)+"/")
}
