package produtos

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Repository abstracts the produtos resource of the remote backend.
type Repository interface {
	List(ctx context.Context, search string) ([]Produto, error)
	Create(ctx context.Context, req CreateRequest) (*Produto, error)
	Update(ctx context.Context, id int64, req UpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

// APIRepository talks to the remote REST backend.
type APIRepository struct {
	client *api.Client
}

// NewRepository builds an APIRepository over the shared client.
func NewRepository(client *api.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) List(ctx context.Context, search string) ([]Produto, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	var out []Produto
	if err := r.client.Get(ctx, "/produtos/", query, &out); err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	return out, nil
}

func (r *APIRepository) Create(ctx context.Context, req CreateRequest) (*Produto, error) {
	var out Produto
	if err := r.client.Post(ctx, "/produtos/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *APIRepository) Update(ctx context.Context, id int64, req UpdateRequest) error {
	return r.client.Put(ctx, "/produtos/"+strconv.FormatInt(id, 10)+"/", req, nil)
}

func (r *APIRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, "/produtos/"+strconv.FormatInt(id, 10)+"/")
}
