package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"mini-blog/internal/config"
	hhttp "mini-blog/internal/handler/http"
	harticle "mini-blog/internal/handler/http/article"
	hauthor "mini-blog/internal/handler/http/author"
	hcategory "mini-blog/internal/handler/http/category"
	"mini-blog/internal/handler/http/requestid"
	"mini-blog/internal/infra/adapter/persistence/memory"
	"mini-blog/internal/observability/tracing"
	artUC "mini-blog/internal/usecase/article"
	authorUC "mini-blog/internal/usecase/author"
	catUC "mini-blog/internal/usecase/category"
)

// setupServer builds the HTTP server for cfg.HTTP around the router.
func setupServer(logger *slog.Logger, cfg *config.Config, store *storeHandle, version string) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newRouter(logger, cfg, store, version),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout, // Prevent Slowloris attacks
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}

// newRouter registers all routes and the middleware chain.
//
// Middleware order: Recover → Request ID → Tracing → Logging → Metrics →
// Security headers → Body Limit → Timeout → StripSlashes → JSON content type.
func newRouter(logger *slog.Logger, cfg *config.Config, store *storeHandle, version string) chi.Router {
	r := chi.NewRouter()

	r.Use(hhttp.Recover(logger))
	r.Use(requestid.Middleware)
	r.Use(tracing.Middleware)
	r.Use(hhttp.Logging(logger))
	r.Use(hhttp.MetricsMiddleware)
	r.Use(hhttp.SecurityHeaders)
	r.Use(hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes))
	if cfg.HTTP.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	}
	r.Use(middleware.StripSlashes)

	health := &hhttp.HealthHandler{Store: store, Backend: store.Kind, Version: version}
	if store.Breaker != nil {
		health.Breaker = store.Breaker
	}

	// Operational endpoints
	r.Method(http.MethodGet, "/health", health)
	r.Method(http.MethodGet, "/ready", &hhttp.ReadyHandler{Store: store})
	r.Method(http.MethodGet, "/live", &hhttp.LiveHandler{})
	r.Method(http.MethodGet, "/metrics", hhttp.MetricsHandler())

	if cfg.HTTP.Swagger {
		// StripSlashes turns /swagger/ into /swagger before routing.
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
		})
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		hcategory.Register(r, catUC.Service{Store: store})
		hauthor.Register(r, authorUC.Service{Store: store})
		harticle.Register(r, artUC.Service{Store: store})
	})

	return r
}

// routesDoc renders the route table of a router built from cfg.
func routesDoc(cfg *config.Config) string {
	store := &storeHandle{Store: memory.NewStore(), Kind: config.StoreMemory}
	r := newRouter(slog.New(slog.DiscardHandler), cfg, store, getVersion())
	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "mini-blog",
		Intro:       "Routes served by the mini-blog API.",
	})
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration, version string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
