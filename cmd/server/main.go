package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/config"
	"github.com/Simplici0/shopquote/internal/db"
	"github.com/Simplici0/shopquote/internal/migrations"
	"github.com/Simplici0/shopquote/internal/pricing"
	"github.com/Simplici0/shopquote/internal/seed"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting shopquote",
		"environment", cfg.Env,
		"port", cfg.Port,
		"db_path", cfg.DBPath,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	cat, closeDB, err := openCatalog(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("failed to prepare catalog", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	s := newServer(cat, pricing.DefaultRegistry(), cfg.RoundThreshold, cfg.APIToken)
	if cfg.APIToken == "" {
		slog.Warn("API_TOKEN is not set, the API is open")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openCatalog migrates the database, seeds it when enabled and loads the
// catalog. The returned func closes the database.
func openCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, func(), error) {
	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}

	if err := migrations.Up(ctx, database); err != nil {
		closeDB()
		return nil, nil, err
	}
	if v, err := migrations.Version(ctx, database); err == nil {
		slog.Info("catalog schema ready", "version", v)
	}

	if cfg.SeedCatalog {
		stats, err := seed.Run(ctx, database)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		slog.Info("catalog seeded", "inserts", stats.Inserts, "skipped", stats.Skipped)
	}

	cat, err := catalog.Load(ctx, database)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return cat, closeDB, nil
}
