package clientes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Repository abstracts the clientes resource of the remote backend.
type Repository interface {
	List(ctx context.Context, search string) ([]Cliente, error)
	Get(ctx context.Context, id int64) (*Cliente, error)
	Create(ctx context.Context, req SaveRequest) (*Cliente, error)
	Update(ctx context.Context, id int64, req SaveRequest) (*Cliente, error)
}

type APIRepository struct {
	client *api.Client
}

func NewRepository(client *api.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) List(ctx context.Context, search string) ([]Cliente, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	var out []Cliente
	if err := r.client.Get(ctx, "/clientes/", query, &out); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return out, nil
}

// Get returns the detail payload, orders included.
func (r *APIRepository) Get(ctx context.Context, id int64) (*Cliente, error) {
	var out Cliente
	if err := r.client.Get(ctx, "/clientes/"+strconv.FormatInt(id, 10)+"/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *APIRepository) Create(ctx context.Context, req SaveRequest) (*Cliente, error) {
	var out Cliente
	if err := r.client.Post(ctx, "/clientes/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the editable fields and returns the record as the server
// now holds it; callers display that object directly.
func (r *APIRepository) Update(ctx context.Context, id int64, req SaveRequest) (*Cliente, error) {
	var out Cliente
	if err := r.client.Put(ctx, "/clientes/"+strconv.FormatInt(id, 10)+"/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
