package categorias

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(NewRepository(api.NewClient(srv.URL, 5*time.Second)))
}

func TestCreateCategoria(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/categorias/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 4, "nome": "Shoes"}`))
	})

	created, err := svc.Create(context.Background(), "Shoes")
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, "Shoes", created.Nome)
}

func TestCreateRejectsBlankNameWithoutRequest(t *testing.T) {
	requests := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := svc.Create(context.Background(), "   ")
	require.Error(t, err)

	var fieldErr *api.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "nome", fieldErr.Field)
	assert.Zero(t, requests)
}

func TestCreateDuplicateSurfacesBackendFieldError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"nome": ["categoria com este nome já existe."]}`))
	})

	_, err := svc.Create(context.Background(), "Shoes")
	require.Error(t, err)

	var fieldErr *api.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "nome", fieldErr.Field)
	assert.Equal(t, "categoria com este nome já existe.", fieldErr.Message)
}

func TestListCategorias(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categorias/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "nome": "Calçados"}, {"id": 2, "nome": "Acessórios"}]`))
	})

	lista, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "Calçados", lista[0].Nome)
}
