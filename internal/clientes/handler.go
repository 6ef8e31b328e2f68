package clientes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AlexLPinheiro/SistemaLoja/internal/pedidos"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/httpx"
	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/internal/view"
)

// Handler serves the client pages, including the per-client order form: new
// orders are always opened from a client's detail page.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	pedidos   *pedidos.Service
	templates *view.Engine
	csrf      *shared.CSRFManager
}

func NewHandler(logger *slog.Logger, service *Service, pedidoService *pedidos.Service, templates *view.Engine, csrf *shared.CSRFManager) *Handler {
	return &Handler{logger: logger, service: service, pedidos: pedidoService, templates: templates, csrf: csrf}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/novo", h.NewForm)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Detail)
	r.Post("/{id}", h.Update)
	r.Get("/{id}/pedidos/novo", h.OrderForm)
	r.Post("/{id}/pedidos", h.CreateOrder)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	busca := strings.TrimSpace(r.URL.Query().Get("busca"))
	lista, err := h.service.List(r.Context(), busca)
	data := map[string]any{
		"Clientes": lista,
		"Busca":    busca,
	}
	if err != nil {
		h.logger.Error("list clientes failed", "error", err, "busca", busca)
		if isFetch(r) {
			http.Error(w, shared.UserSafeMessage(err), http.StatusBadGateway)
			return
		}
		data["Clientes"] = []Cliente{}
		data["Erro"] = shared.UserSafeMessage(err)
	}
	if isFetch(r) {
		csrfToken, _ := h.csrf.EnsureToken(r.Context(), shared.SessionFromContext(r.Context()))
		if err := h.templates.Render(w, "partials/clientes_table.html", view.TemplateData{CSRFToken: csrfToken, Data: data}); err != nil {
			h.logger.Error("render template", "error", err, "template", "partials/clientes_table.html")
		}
		return
	}
	h.renderPage(w, r, "pages/clientes_list.html", "Clientes", data)
}

func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "pages/cliente_form.html", "Adicionar cliente", map[string]any{
		"Form":   Form{},
		"Errors": map[string]string{},
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := Form{
		PrimeiroNome: r.PostFormValue("primeiro_nome"),
		Sobrenome:    r.PostFormValue("sobrenome"),
		Telefone:     r.PostFormValue("telefone"),
		Endereco:     r.PostFormValue("endereco"),
	}
	created, err := h.service.Create(r.Context(), form)
	if err != nil {
		h.logger.Error("create cliente failed", "error", err)
		h.renderPageStatus(w, r, "pages/cliente_form.html", "Adicionar cliente", map[string]any{
			"Form":   form,
			"Errors": shared.FieldMessages(err),
		}, http.StatusBadRequest)
		return
	}

	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Cliente \""+created.NomeCompleto+"\" adicionado com sucesso!")
	}
	http.Redirect(w, r, "/clientes", http.StatusSeeOther)
}

// Detail shows the client with their orders, status pills, the edit-in-place
// form and the new-order entry point.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	cliente, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("get cliente failed", "error", err, "id", id)
		http.Error(w, shared.UserSafeMessage(err), http.StatusBadGateway)
		return
	}
	h.renderPage(w, r, "pages/cliente_detail.html", cliente.NomeCompleto, map[string]any{
		"Cliente": cliente,
		"Errors":  map[string]string{},
	})
}

// Update handles the in-place edit. Fetch callers get the server-confirmed
// record back as JSON and apply it without another round trip.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := EditForm{
		NomeCompleto: r.PostFormValue("nome_completo"),
		Telefone:     r.PostFormValue("telefone"),
		Endereco:     r.PostFormValue("endereco"),
	}
	updated, err := h.service.Update(r.Context(), id, form)
	if err != nil {
		h.logger.Error("update cliente failed", "error", err, "id", id)
		if isFetch(r) {
			httpx.RespondError(w, err)
			return
		}
		if sess := shared.SessionFromContext(r.Context()); sess != nil {
			sess.AddFlash("error", shared.UserSafeMessage(err))
		}
		http.Redirect(w, r, "/clientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}

	if isFetch(r) {
		httpx.JSON(w, http.StatusOK, updated)
		return
	}
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Cliente atualizado com sucesso!")
	}
	http.Redirect(w, r, "/clientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// OrderForm renders the new-order form. Product list and the day's exchange
// rate load together; a dashboard failure only downgrades the rate.
func (h *Handler) OrderForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	cliente, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get cliente failed", "error", err, "id", id)
		http.Error(w, shared.UserSafeMessage(err), http.StatusBadGateway)
		return
	}
	formData, err := h.pedidos.LoadFormData(r.Context())
	if err != nil {
		h.logger.Error("load order form data failed", "error", err)
		if sess := shared.SessionFromContext(r.Context()); sess != nil {
			sess.AddFlash("error", shared.UserSafeMessage(err))
		}
		http.Redirect(w, r, "/clientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}
	h.renderPage(w, r, "pages/pedido_form.html", "Novo pedido", map[string]any{
		"Cliente":             cliente,
		"Produtos":            formData.Produtos,
		"Cotacao":             formData.Cotacao,
		"CotacaoIndisponivel": formData.CotacaoIndisponivel,
		"Errors":              map[string]string{},
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	draft := draftFromForm(id, r)
	created, err := h.pedidos.Create(r.Context(), draft)
	if err != nil {
		h.logger.Error("create pedido failed", "error", err, "cliente", id)
		if sess := shared.SessionFromContext(r.Context()); sess != nil {
			sess.AddFlash("error", shared.UserSafeMessage(err))
		}
		http.Redirect(w, r, "/clientes/"+strconv.FormatInt(id, 10)+"/pedidos/novo", http.StatusSeeOther)
		return
	}

	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Pedido #"+strconv.FormatInt(created.ID, 10)+" criado com sucesso!")
	}
	http.Redirect(w, r, "/clientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// draftFromForm reads the dynamic line-item rows. Row fields come indexed:
// produto_id_0, quantidade_0, margem_0 and so on.
func draftFromForm(clienteID int64, r *http.Request) pedidos.Draft {
	parcelas, _ := strconv.Atoi(r.PostFormValue("quantidade_parcelas"))
	diaVencimento, _ := strconv.Atoi(r.PostFormValue("dia_vencimento_parcela"))
	linhas, _ := strconv.Atoi(r.PostFormValue("linhas"))

	rows := make([]pedidos.DraftRow, 0, linhas)
	for i := 0; i < linhas; i++ {
		idx := strconv.Itoa(i)
		produtoID, _ := strconv.ParseInt(r.PostFormValue("produto_id_"+idx), 10, 64)
		quantidade, _ := strconv.Atoi(r.PostFormValue("quantidade_" + idx))
		rows = append(rows, pedidos.DraftRow{
			ProdutoID:  produtoID,
			Quantidade: quantidade,
			Margem:     r.PostFormValue("margem_" + idx),
		})
	}

	return pedidos.Draft{
		ClienteID:            clienteID,
		MetodoPagamento:      r.PostFormValue("metodo_pagamento"),
		QuantidadeParcelas:   parcelas,
		DiaVencimentoParcela: diaVencimento,
		ValorServico:         r.PostFormValue("valor_servico"),
		Rows:                 rows,
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data map[string]any) {
	h.renderPageStatus(w, r, name, title, data, http.StatusOK)
}

func (h *Handler) renderPageStatus(w http.ResponseWriter, r *http.Request, name, title string, data map[string]any, status int) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := h.templates.Render(w, name, view.TemplateData{
		Title:       title,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}); err != nil {
		h.logger.Error("render template", "error", err, "template", name)
	}
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
