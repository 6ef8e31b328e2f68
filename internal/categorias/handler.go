package categorias

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

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
	r.Get("/nova", h.Form)
	r.Post("/", h.Create)
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, map[string]any{
		"Errors": map[string]string{},
		"Nome":   "",
	}, http.StatusOK)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	nome := strings.TrimSpace(r.PostFormValue("nome"))
	created, err := h.service.Create(r.Context(), nome)
	if err != nil {
		h.logger.Error("create categoria failed", "error", err)
		h.render(w, r, map[string]any{
			"Errors": shared.FieldMessages(err),
			"Nome":   nome,
		}, http.StatusBadRequest)
		return
	}

	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.AddFlash("success", "Categoria \""+created.Nome+"\" adicionada com sucesso!")
	}
	http.Redirect(w, r, "/produtos", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data map[string]any, status int) {
	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	w.WriteHeader(status)
	if err := h.templates.Render(w, "pages/categoria_form.html", view.TemplateData{
		Title:       "Adicionar categoria",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}); err != nil {
		h.logger.Error("render template", "error", err, "template", "pages/categoria_form.html")
	}
}
