package pedidos

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
)

func newToggleRouter(repo *fakePedidoRepo) (http.Handler, *Service) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(repo, &fakeProdutoRepo{}, &fakeDashboardRepo{})
	h := NewHandler(logger, svc, nil, nil)
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r, svc
}

func doToggle(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("X-Requested-With", "fetch")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestToggleFetchAnswersConfirmedStatuses(t *testing.T) {
	repo := &fakePedidoRepo{
		lista:   []Pedido{{ID: 7, StatusPagamento: StatusNaoPago}},
		updated: Pedido{ID: 7, StatusPagamento: StatusPago, StatusEntrega: StatusNaoEntregue, StatusPedido: "em_aberto"},
	}
	router, _ := newToggleRouter(repo)

	rec := doToggle(t, router, "/7/pagamento")

	require.Equal(t, http.StatusOK, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, StatusPago, body["status_pagamento"])
	assert.Equal(t, StatusNaoEntregue, body["status_entrega"])
}

func TestToggleFetchUnknownOrderIsNotFoundProblem(t *testing.T) {
	router, _ := newToggleRouter(&fakePedidoRepo{})

	rec := doToggle(t, router, "/42/pagamento")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "Registro não encontrado", body["title"])
}

func TestToggleFetchTransportFailureIsBadGatewayProblem(t *testing.T) {
	repo := &fakePedidoRepo{
		lista: []Pedido{{ID: 7, StatusPagamento: StatusNaoPago}},
		err:   &api.TransportError{Op: "PATCH /pedidos/7/atualizar-status/", Status: 502},
	}
	router, _ := newToggleRouter(repo)

	rec := doToggle(t, router, "/7/pagamento")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "Falha de comunicação com o servidor", body["title"])
}

func TestToggleFetchDuplicateIsConflictProblem(t *testing.T) {
	repo := &fakePedidoRepo{
		block:   make(chan struct{}),
		lista:   []Pedido{{ID: 7, StatusPagamento: StatusNaoPago}},
		updated: Pedido{ID: 7, StatusPagamento: StatusPago},
	}
	router, svc := newToggleRouter(repo)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.TogglePagamento(context.Background(), Pedido{ID: 7, StatusPagamento: StatusNaoPago})
		firstDone <- err
	}()
	// Let the first PATCH get in flight before the duplicate arrives.
	time.Sleep(20 * time.Millisecond)

	rec := doToggle(t, router, "/7/pagamento")
	close(repo.block)
	require.NoError(t, <-firstDone)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, "Alteração em andamento", body["title"])
	assert.Len(t, repo.patches, 1)
}
