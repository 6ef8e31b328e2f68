package produtos

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AlexLPinheiro/SistemaLoja/internal/categorias"
	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/internal/view"
)

// Handler serves the product pages. The category service is needed for the
// dropdown on the add/edit forms.
type Handler struct {
	logger     *slog.Logger
	service    *Service
	categorias *categorias.Service
	templates  *view.Engine
	csrf       *shared.CSRFManager
}

func NewHandler(logger *slog.Logger, service *Service, categoriaService *categorias.Service, templates *view.Engine, csrf *shared.CSRFManager) *Handler {
	return &Handler{logger: logger, service: service, categorias: categoriaService, templates: templates, csrf: csrf}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/novo", h.NewForm)
	r.Post("/", h.Create)
	r.Get("/{id}/editar", h.EditForm)
	r.Post("/{id}", h.Update)
	r.Post("/{id}/apagar", h.Delete)
}

// List renders the product table. The search box re-requests this route with
// ?busca=; fetch requests get just the table fragment so the page script can
// swap it in place.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	busca := strings.TrimSpace(r.URL.Query().Get("busca"))
	lista, err := h.service.List(r.Context(), busca)
	if err != nil {
		h.logger.Error("list produtos failed", "error", err, "busca", busca)
		if isFetch(r) {
			http.Error(w, shared.UserSafeMessage(err), http.StatusBadGateway)
			return
		}
		h.renderPage(w, r, "pages/produtos_list.html", "Produtos", map[string]any{
			"Produtos": []Produto{},
			"Busca":    busca,
			"Erro":     shared.UserSafeMessage(err),
		}, http.StatusOK)
		return
	}

	data := map[string]any{
		"Produtos": lista,
		"Busca":    busca,
	}
	if isFetch(r) {
		csrfToken, _ := h.csrf.EnsureToken(r.Context(), shared.SessionFromContext(r.Context()))
		if err := h.templates.Render(w, "partials/produtos_table.html", view.TemplateData{CSRFToken: csrfToken, Data: data}); err != nil {
			h.logger.Error("render template", "error", err, "template", "partials/produtos_table.html")
		}
		return
	}
	h.renderPage(w, r, "pages/produtos_list.html", "Produtos", data, http.StatusOK)
}

func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, formView{Titulo: "Adicionar produto", Action: "/produtos"}, http.StatusOK)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := formFromRequest(r)
	created, err := h.service.Create(r.Context(), form)
	if err != nil {
		h.logger.Error("create produto failed", "error", err)
		h.renderForm(w, r, formView{
			Titulo: "Adicionar produto",
			Action: "/produtos",
			Form:   form,
			Errors: shared.FieldMessages(err),
		}, http.StatusBadRequest)
		return
	}

	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Produto \""+created.Nome+"\" adicionado com sucesso!")
	}
	http.Redirect(w, r, "/produtos", http.StatusSeeOther)
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	produto, err := h.lookupProduto(r, id)
	if err != nil {
		h.logger.Error("load produto failed", "error", err, "id", id)
		http.Error(w, shared.UserSafeMessage(err), http.StatusBadGateway)
		return
	}
	if produto == nil {
		http.NotFound(w, r)
		return
	}
	h.renderForm(w, r, formView{
		Titulo: "Editar produto",
		Action: "/produtos/" + strconv.FormatInt(id, 10),
		Form: Form{
			Nome:       produto.Nome,
			Marca:      produto.Marca,
			PrecoDolar: strconv.FormatFloat(produto.PrecoDolar.Float(), 'f', 2, 64),
		},
		Produto: produto,
	}, http.StatusOK)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := formFromRequest(r)
	if err := h.service.Update(r.Context(), id, form); err != nil {
		h.logger.Error("update produto failed", "error", err, "id", id)
		produto, _ := h.lookupProduto(r, id)
		h.renderForm(w, r, formView{
			Titulo:  "Editar produto",
			Action:  "/produtos/" + strconv.FormatInt(id, 10),
			Form:    form,
			Produto: produto,
			Errors:  shared.FieldMessages(err),
		}, http.StatusBadRequest)
		return
	}

	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Produto atualizado com sucesso!")
	}
	http.Redirect(w, r, "/produtos", http.StatusSeeOther)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete produto failed", "error", err, "id", id)
		if sess := shared.SessionFromContext(r.Context()); sess != nil {
			sess.AddFlash("error", shared.UserSafeMessage(err))
		}
		http.Redirect(w, r, "/produtos", http.StatusSeeOther)
		return
	}
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Produto apagado com sucesso!")
	}
	http.Redirect(w, r, "/produtos", http.StatusSeeOther)
}

// formView is what the add/edit form template receives.
type formView struct {
	Titulo  string
	Action  string
	Form    Form
	Produto *Produto
	Errors  map[string]string
}

func formFromRequest(r *http.Request) Form {
	categoriaID, _ := strconv.ParseInt(r.PostFormValue("categoria_id"), 10, 64)
	return Form{
		Nome:             r.PostFormValue("nome"),
		Marca:            r.PostFormValue("marca"),
		PrecoDolar:       r.PostFormValue("preco_dolar"),
		CategoriaID:      categoriaID,
		EstoqueInicial:   r.PostFormValue("quantidade_estoque"),
		AdicionarEstoque: r.PostFormValue("adicionar_estoque"),
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, fv formView, status int) {
	lista, err := h.categorias.List(r.Context())
	if err != nil {
		h.logger.Error("list categorias for form failed", "error", err)
	}
	// The read payload carries the category as a name; resolve it back to an
	// id so the edit form preselects it.
	if fv.Form.CategoriaID == 0 && fv.Produto != nil {
		for _, c := range lista {
			if c.Nome == fv.Produto.Categoria {
				fv.Form.CategoriaID = c.ID
				break
			}
		}
	}
	if fv.Errors == nil {
		fv.Errors = map[string]string{}
	}
	h.renderPage(w, r, "pages/produto_form.html", fv.Titulo, map[string]any{
		"Titulo":     fv.Titulo,
		"Action":     fv.Action,
		"Form":       fv.Form,
		"Produto":    fv.Produto,
		"Categorias": lista,
		"Errors":     fv.Errors,
	}, status)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data map[string]any, status int) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	w.WriteHeader(status)
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

// lookupProduto fetches the list and picks the product by id. The backend has
// no single-product read, so the edit form reuses the listing. A nil product
// with nil error means the id does not exist.
func (h *Handler) lookupProduto(r *http.Request, id int64) (*Produto, error) {
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

func isFetch(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "fetch"
}
