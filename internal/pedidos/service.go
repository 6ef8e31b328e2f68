package pedidos

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/AlexLPinheiro/SistemaLoja/internal/dashboard"
	"github.com/AlexLPinheiro/SistemaLoja/internal/pricing"
	"github.com/AlexLPinheiro/SistemaLoja/internal/produtos"
)

// ErrToggleEmAndamento rejects a toggle on an order field that already has a
// request in flight. The first request wins; the page reflects its result.
var ErrToggleEmAndamento = errors.New("alteração de status em andamento")

// Service owns order creation, listing and the status toggles. Toggles are
// guarded per order-and-field so a double click cannot issue two PATCHes.
type Service struct {
	repo      Repository
	produtos  produtos.Repository
	dashboard dashboard.Repository
	toggles   singleflight.Group
}

func NewService(repo Repository, produtoRepo produtos.Repository, dashboardRepo dashboard.Repository) *Service {
	return &Service{repo: repo, produtos: produtoRepo, dashboard: dashboardRepo}
}

func (s *Service) List(ctx context.Context, search string) ([]Pedido, error) {
	return s.repo.List(ctx, search)
}

// Create builds the draft and submits it. Draft errors (no items) never reach
// the backend.
func (s *Service) Create(ctx context.Context, draft Draft) (*Pedido, error) {
	req, err := draft.Build()
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, *req)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// TogglePagamento flips the payment status. The patch carries only
// status_pagamento; delivery stays untouched server-side.
func (s *Service) TogglePagamento(ctx context.Context, pedido Pedido) (*Pedido, error) {
	next := StatusPago
	if pedido.StatusPagamento == StatusPago {
		next = StatusNaoPago
	}
	return s.toggle(ctx, pedido.ID, "pagamento", StatusPatch{StatusPagamento: &next})
}

// ToggleEntrega flips the delivery status, payment stays untouched.
func (s *Service) ToggleEntrega(ctx context.Context, pedido Pedido) (*Pedido, error) {
	next := StatusEntregue
	if pedido.StatusEntrega == StatusEntregue {
		next = StatusNaoEntregue
	}
	return s.toggle(ctx, pedido.ID, "entrega", StatusPatch{StatusEntrega: &next})
}

// toggle runs the PATCH under a per-order-field singleflight key. Only the
// caller whose function actually executes gets the result; callers that
// arrived while it was in flight get ErrToggleEmAndamento instead of a
// second request.
func (s *Service) toggle(ctx context.Context, id int64, campo string, patch StatusPatch) (*Pedido, error) {
	key := toggleKey(id, campo)
	var owner bool
	v, err, _ := s.toggles.Do(key, func() (any, error) {
		owner = true
		return s.repo.UpdateStatus(ctx, id, patch)
	})
	if !owner {
		return nil, ErrToggleEmAndamento
	}
	if err != nil {
		return nil, err
	}
	return v.(*Pedido), nil
}

func toggleKey(id int64, campo string) string {
	return "pedido:" + strconv.FormatInt(id, 10) + ":" + campo
}

// FormData is everything the order form needs before it can render.
type FormData struct {
	Produtos []produtos.Produto
	// Cotacao is the fee-inclusive rate of the day, or the fallback when
	// the dashboard fetch failed.
	Cotacao             float64
	CotacaoIndisponivel bool
}

// LoadFormData fetches the product list and the dashboard snapshot
// concurrently. The product list is mandatory; a dashboard failure falls back
// to the fixed rate instead of blocking the form.
func (s *Service) LoadFormData(ctx context.Context) (*FormData, error) {
	data := &FormData{Cotacao: pricing.CotacaoFallback}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lista, err := s.produtos.List(gctx, "")
		if err != nil {
			return err
		}
		data.Produtos = lista
		return nil
	})
	g.Go(func() error {
		snap, err := s.dashboard.Get(gctx)
		if err != nil || snap.CotacaoDolarDia.Float() <= 0 {
			data.CotacaoIndisponivel = true
			return nil
		}
		data.Cotacao = snap.CotacaoDolarDia.Float()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
