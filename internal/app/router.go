package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AlexLPinheiro/SistemaLoja/internal/categorias"
	"github.com/AlexLPinheiro/SistemaLoja/internal/clientes"
	"github.com/AlexLPinheiro/SistemaLoja/internal/dashboard"
	"github.com/AlexLPinheiro/SistemaLoja/internal/pedidos"
	"github.com/AlexLPinheiro/SistemaLoja/internal/produtos"
	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/internal/view"
	"github.com/AlexLPinheiro/SistemaLoja/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	Templates      *view.Engine
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	DashboardHandler  *dashboard.Handler
	ClientesHandler   *clientes.Handler
	ProdutosHandler   *produtos.Handler
	CategoriasHandler *categorias.Handler
	PedidosHandler    *pedidos.Handler
}

// NewRouter constructs the chi.Router with the store's defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.DashboardHandler.MountRoutes(r)
	r.Route("/clientes", params.ClientesHandler.MountRoutes)
	r.Route("/produtos", params.ProdutosHandler.MountRoutes)
	r.Route("/categorias", params.CategoriasHandler.MountRoutes)
	r.Route("/pedidos", params.PedidosHandler.MountRoutes)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
