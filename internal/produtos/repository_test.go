package produtos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) *APIRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRepository(api.NewClient(srv.URL, 5*time.Second))
}

func TestListPassesSearchParam(t *testing.T) {
	var gotPath, gotSearch string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "nome": "Tênis", "marca": "Nike", "categoria": "Calçados", "preco_dolar": "25.00", "preco_real_custo": "154.46", "quantidade_estoque": 3, "quantidade_vendas": 7}]`))
	})

	lista, err := repo.List(context.Background(), "nike")
	require.NoError(t, err)
	assert.Equal(t, "/produtos/", gotPath)
	assert.Equal(t, "nike", gotSearch)
	require.Len(t, lista, 1)
	assert.Equal(t, "Tênis", lista[0].Nome)
	assert.InDelta(t, 25.0, lista[0].PrecoDolar.Float(), 1e-9)
	assert.True(t, lista[0].EmEstoque())
}

func TestUpdateSendsStockDeltaNotTotal(t *testing.T) {
	var gotMethod, gotPath string
	var payload map[string]any
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	err := repo.Update(context.Background(), 12, UpdateRequest{
		Nome:             "Tênis",
		Marca:            "Nike",
		PrecoDolar:       25,
		CategoriaID:      2,
		AdicionarEstoque: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/produtos/12/", gotPath)
	assert.Equal(t, float64(5), payload["adicionar_estoque"])
	// The payload carries only the delta to add, never a stock total.
	assert.NotContains(t, payload, "quantidade_estoque")
}

func TestCreateOmitsZeroInitialStock(t *testing.T) {
	var payload map[string]any
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 9, "nome": "Boné", "marca": "Adidas", "categoria": "Acessórios", "preco_dolar": "10.00", "preco_real_custo": "61.77", "quantidade_estoque": 0, "quantidade_vendas": 0}`))
	})

	created, err := repo.Create(context.Background(), CreateRequest{
		Nome:        "Boné",
		Marca:       "Adidas",
		PrecoDolar:  10,
		CategoriaID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.NotContains(t, payload, "quantidade_estoque")
}

func TestDeleteHitsResourcePath(t *testing.T) {
	var gotMethod, gotPath string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/produtos/4/", gotPath)
}
