package dashboard

import (
	"context"
	"fmt"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

// Repository reads the aggregated dashboard resource.
type Repository interface {
	Get(ctx context.Context) (*Snapshot, error)
}

type APIRepository struct {
	client *api.Client
}

func NewRepository(client *api.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) Get(ctx context.Context) (*Snapshot, error) {
	var out Snapshot
	if err := r.client.Get(ctx, "/dashboard/", nil, &out); err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}
	return &out, nil
}
