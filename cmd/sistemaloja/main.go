package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AlexLPinheiro/SistemaLoja/internal/app"
	"github.com/AlexLPinheiro/SistemaLoja/internal/categorias"
	"github.com/AlexLPinheiro/SistemaLoja/internal/clientes"
	"github.com/AlexLPinheiro/SistemaLoja/internal/dashboard"
	"github.com/AlexLPinheiro/SistemaLoja/internal/pedidos"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/api"
	"github.com/AlexLPinheiro/SistemaLoja/internal/platform/cache"
	"github.com/AlexLPinheiro/SistemaLoja/internal/produtos"
	"github.com/AlexLPinheiro/SistemaLoja/internal/shared"
	"github.com/AlexLPinheiro/SistemaLoja/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "sistemaloja_session", cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	categoriaRepo := categorias.NewRepository(apiClient)
	categoriaService := categorias.NewService(categoriaRepo)
	categoriaHandler := categorias.NewHandler(logger, categoriaService, templates, csrfManager)

	produtoRepo := produtos.NewRepository(apiClient)
	produtoService := produtos.NewService(produtoRepo)
	produtoHandler := produtos.NewHandler(logger, produtoService, categoriaService, templates, csrfManager)

	dashboardRepo := dashboard.NewRepository(apiClient)
	dashboardHandler := dashboard.NewHandler(logger, dashboardRepo, templates, csrfManager)

	pedidoRepo := pedidos.NewRepository(apiClient)
	pedidoService := pedidos.NewService(pedidoRepo, produtoRepo, dashboardRepo)
	pedidoHandler := pedidos.NewHandler(logger, pedidoService, templates, csrfManager)

	clienteRepo := clientes.NewRepository(apiClient)
	clienteService := clientes.NewService(clienteRepo)
	clienteHandler := clientes.NewHandler(logger, clienteService, pedidoService, templates, csrfManager)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		Templates:         templates,
		SessionManager:    sessionManager,
		CSRFManager:       csrfManager,
		DashboardHandler:  dashboardHandler,
		ClientesHandler:   clienteHandler,
		ProdutosHandler:   produtoHandler,
		CategoriasHandler: categoriaHandler,
		PedidosHandler:    pedidoHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
