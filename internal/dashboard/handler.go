package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/internal/view"
)

type Handler struct {
	logger    *slog.Logger
	repo      Repository
	templates *view.Engine
	csrf      *shared.CSRFManager
}

func NewHandler(logger *slog.Logger, repo Repository, templates *view.Engine, csrf *shared.CSRFManager) *Handler {
	return &Handler{logger: logger, repo: repo, templates: templates, csrf: csrf}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Home)
}

// Home renders the four summary cards. A backend failure still renders the
// page so navigation keeps working.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	snap, err := h.repo.Get(r.Context())
	if err != nil {
		h.logger.Error("get dashboard failed", "error", err)
		data["Erro"] = shared.UserSafeMessage(err)
	} else {
		data["Snapshot"] = snap
	}

	sess := shared.SessionFromContext(r.Context())
	csrfToken, _ := h.csrf.EnsureToken(r.Context(), sess)
	var flash *shared.FlashMessage
	if sess != nil {
		flash = sess.PopFlash()
	}
	if err := h.templates.Render(w, "pages/home.html", view.TemplateData{
		Title:       "Dashboard",
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}); err != nil {
		h.logger.Error("render template", "error", err, "template", "pages/home.html")
	}
}
