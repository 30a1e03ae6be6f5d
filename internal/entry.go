// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/ansuz/internal/agent"
	"github.com/starford/ansuz/internal/api"
	"github.com/starford/ansuz/internal/mcpserver"
	"github.com/starford/ansuz/internal/notestore"
	"github.com/starford/ansuz/internal/sse"
	"github.com/starford/ansuz/internal/summarizer"
)

// setup applies options, initializes logging, and builds the store,
// summarizer, and agent service shared by both the HTTP and MCP entrypoints.
// The returned cleanup closes the store when it owns a connection.
func setup(opts ...Option) (*application, *agent.Service, func(), error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, nil, nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("log_level", cfg.App.LogLevel.String()))

	cleanup := func() {}
	if app.store == nil {
		switch cfg.Store.Backend {
		case StoreBackendSQLite:
			db, err := notestore.OpenSQLite(cfg.Store.SQLitePath)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("init store: %w", err)
			}
			app.store = db
			cleanup = func() { _ = db.Close() }
		default:
			app.store = notestore.NewMemory()
		}
	}

	if app.sum == nil {
		app.sum = summarizer.NewClient(summarizer.ClientConfig{
			BaseURL:   cfg.Summarizer.BaseURL,
			APIKey:    cfg.Summarizer.APIKey,
			Model:     cfg.Summarizer.Model,
			MaxTokens: cfg.Summarizer.MaxTokens,
			Timeout:   cfg.Summarizer.Timeout(),
		})
	}

	return app, agent.New(app.store, app.sum), cleanup, nil
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, svc, cleanup, err := setup(opts...)
	if err != nil {
		return err
	}
	defer cleanup()
	cfg := app.config

	// SSE broker for note change events.
	broker := sse.NewBroker()
	defer broker.Close()

	apiRouter := api.NewRouter(app.store, svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			slog.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			slog.Info("Context cancelled, initiating shutdown")
		}

		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	slog.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP stdio server with the given options.
func RunMCP(_ context.Context, opts ...Option) error {
	app, svc, cleanup, err := setup(opts...)
	if err != nil {
		return err
	}
	defer cleanup()

	slog.Info("Starting MCP server on stdio")
	return mcpserver.New(app.store, svc).ServeStdio()
}
