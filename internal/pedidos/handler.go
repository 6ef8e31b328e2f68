package pedidos

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AlexLPinheiro/SistemaLoja/internal/money"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/httpx"
	"github.com/AlexLPinheiro/SistemaLoja/internal/pricing"
	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/internal/view"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	csrf      *shared.CSRFManager
}

func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, csrf *shared.CSRFManager) *Handler {
	return &Handler{logger: logger, service: service, templates: templates, csrf: csrf}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/preview", h.Preview)
	r.Post("/{id}/pagamento", h.TogglePagamento)
	r.Post("/{id}/entrega", h.ToggleEntrega)
	r.Post("/{id}/apagar", h.Delete)
}

// List shows every order across clients. The search box re-requests with
// ?busca=; fetch requests receive just the table fragment.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	busca := strings.TrimSpace(r.URL.Query().Get("busca"))
	lista, err := h.service.List(r.Context(), busca)
	data := map[string]any{
		"Pedidos": lista,
		"Busca":   busca,
	}
	if err != nil {
		h.logger.Error("list pedidos failed", "error", err, "busca", busca)
		if isFetch(r) {
			http.Error(w, shared.UserSafeMessage(err), http.StatusBadGateway)
			return
		}
		data["Pedidos"] = []Pedido{}
		data["Erro"] = shared.UserSafeMessage(err)
	}
	if isFetch(r) {
		csrfToken, _ := h.csrf.EnsureToken(r.Context(), shared.SessionFromContext(r.Context()))
		if err := h.templates.Render(w, "partials/pedidos_table.html", view.TemplateData{CSRFToken: csrfToken, Data: data}); err != nil {
			h.logger.Error("render template", "error", err, "template", "partials/pedidos_table.html")
		}
		return
	}
	h.renderPage(w, r, data)
}

// Preview answers the order form's per-line cost preview. The arithmetic
// lives in internal/pricing only; the page script never recomputes it.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	quantidade, _ := strconv.Atoi(q.Get("quantidade"))
	quote := pricing.Florida(
		money.Parse(q.Get("preco_dolar")),
		money.Parse(q.Get("cotacao")),
		quantidade,
		money.Parse(q.Get("margem")),
	)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"custo_unitario_brl":  pricing.Round2(quote.UnitCostBRL()),
		"custo_linha_brl":     quote.LineCostBRL(),
		"custo_linha_usd":     quote.LineCostUSD(),
		"venda_unitaria_brl":  pricing.Round2(quote.UnitSalePreview()),
		"custo_linha_brl_fmt": money.FormatBRL(quote.LineCostBRL()),
		"custo_linha_usd_fmt": money.FormatUSD(quote.LineCostUSD()),
	})
}

func (h *Handler) TogglePagamento(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.TogglePagamento)
}

func (h *Handler) ToggleEntrega(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.ToggleEntrega)
}

// toggle looks the order up fresh, flips the requested field and answers with
// the server-confirmed record. Nothing changes on error.
func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, flip func(ctx context.Context, pedido Pedido) (*Pedido, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	pedido, err := h.lookupPedido(r, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if pedido == nil {
		h.fail(w, r, api.ErrNotFound)
		return
	}

	updated, err := flip(r.Context(), *pedido)
	if err != nil {
		h.logger.Error("toggle status failed", "error", err, "pedido", id)
		if errors.Is(err, ErrToggleEmAndamento) && isFetch(r) {
			httpx.Problem(w, http.StatusConflict, "Alteração em andamento", "Uma alteração deste status já está em andamento. Aguarde e tente novamente.")
			return
		}
		h.fail(w, r, err)
		return
	}

	if isFetch(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"id":               updated.ID,
			"status_pagamento": updated.StatusPagamento,
			"status_entrega":   updated.StatusEntrega,
			"status_pedido":    updated.StatusPedido,
		})
		return
	}
	h.redirectBack(w, r)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete pedido failed", "error", err, "pedido", id)
		if sess := shared.SessionFromContext(r.Context()); sess != nil {
			sess.AddFlash("error", shared.UserSafeMessage(err))
		}
		h.redirectBack(w, r)
		return
	}
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Pedido apagado com sucesso!")
	}
	h.redirectBack(w, r)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	if err := h.templates.Render(w, "pages/pedidos_list.html", view.TemplateData{
		Title:       "Pedidos",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}); err != nil {
		h.logger.Error("render template", "error", err, "template", "pages/pedidos_list.html")
	}
}

func (h *Handler) lookupPedido(r *http.Request, id int64) (*Pedido, error) {
	lista, err := h.service.List(r.Context(), "")
	if err != nil {
		return nil, err
	}
	for i := range lista {
		if lista[i].ID == id {
			return &lista[i], nil
		}
	}
	return nil, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isFetch(r) {
		httpx.RespondError(w, err)
		return
	}
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("error", shared.UserSafeMessage(err))
	}
	h.redirectBack(w, r)
}


// redirectBack returns to the page that posted the action, falling back to
// the orders list. Only the path of the referer is trusted.
func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request) {
	target := "/pedidos"
	if ref, err := url.Parse(r.Referer()); err == nil && strings.HasPrefix(ref.Path, "/") {
		target = ref.Path
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

func isFetch(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "fetch"
}
