package clientes

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

func TestGetIncludesOrders(t *testing.T) {
	var gotPath string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 3, "nome_completo": "Maria Silva", "telefone": "11 99999-0000",
			"endereco": "Rua das Flores, 10", "total_gasto": "840.00",
			"pedidos": [{"id": 31, "cliente": "Maria Silva", "subtotal": "310.00", "status_pagamento": "nao_pago", "status_entrega": "nao_entregue", "status_pedido": "em_aberto", "itens": []}]
		}`))
	})

	cliente, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/clientes/3/", gotPath)
	assert.InDelta(t, 840.0, cliente.TotalGasto.Float(), 1e-9)
	require.Len(t, cliente.Pedidos, 1)
	assert.Equal(t, int64(31), cliente.Pedidos[0].ID)
	assert.False(t, cliente.Pedidos[0].Pago())
}

func TestGetNotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	})

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestUpdateReturnsServerRecord(t *testing.T) {
	var gotMethod, gotPath string
	var payload map[string]any
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		// The server recomputes total_gasto; the caller must take this
		// record as-is.
		w.Write([]byte(`{"id": 3, "nome_completo": "Maria Souza", "telefone": "11 98888-0000", "endereco": "Av. Central, 200", "total_gasto": "900.00"}`))
	})

	updated, err := repo.Update(context.Background(), 3, SaveRequest{
		NomeCompleto: "Maria Souza",
		Telefone:     "11 98888-0000",
		Endereco:     "Av. Central, 200",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/clientes/3/", gotPath)
	assert.Equal(t, "Maria Souza", payload["nome_completo"])
	assert.InDelta(t, 900.0, updated.TotalGasto.Float(), 1e-9)
}

func TestCreateSurfacesFieldError(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"telefone": ["Este campo é obrigatório."]}`))
	})

	_, err := repo.Create(context.Background(), SaveRequest{NomeCompleto: "Maria Silva"})
	require.Error(t, err)

	var fieldErr *api.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "telefone", fieldErr.Field)
	assert.Equal(t, "Este campo é obrigatório.", fieldErr.Message)
}

func TestListSearch(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mar", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 3, "nome_completo": "Maria Silva", "total_gasto": "840.00"}]`))
	})

	lista, err := repo.List(context.Background(), "mar")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Maria Silva", lista[0].NomeCompleto)
}
