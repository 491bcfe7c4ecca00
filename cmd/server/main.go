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

	"buildstone/internal/chat"
	chathandler "buildstone/internal/chat/handler"
	"buildstone/internal/platform/config"
	"buildstone/internal/platform/httpserver"
	"buildstone/internal/platform/logger"
	"buildstone/internal/platform/metrics"
	"buildstone/internal/status"
	"buildstone/internal/submission"
	submissionhandler "buildstone/internal/submission/handler"
	httptransport "buildstone/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	// Optional .env for local development; the real environment wins.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	store := connectStore(cfg, log)

	submissions, err := submission.NewService(store, log, m)
	if err != nil {
		log.Error("invalid collection wiring", "error", err.Error())
		os.Exit(1)
	}

	router := httptransport.NewRouter(
		submissionhandler.New(submissions, log),
		chathandler.New(chat.NewEngine(), log, m),
		status.New(store, cfg.Database, cfg.DatabaseURL != "", log),
		m,
		cfg.CORSOrigins,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting buildstone backend", "addr", cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}

// connectStore picks the storage backend. A missing DATABASE_URL or a failed
// connection degrades to the unconfigured store: the service still starts and
// answers liveness and chat requests while storage calls fail fast.
func connectStore(cfg config.Server, log *slog.Logger) submission.Store {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; storage operations will fail until configured")
		return submission.NewUnconfiguredStore()
	}

	store, err := submission.Connect(cfg.DatabaseURL, cfg.User, cfg.Pass, cfg.Namespace, cfg.Database)
	if err != nil {
		log.Warn("storage connection failed; continuing without storage", "error", err.Error())
		return submission.NewUnconfiguredStore()
	}

	log.Info("storage connected", "namespace", cfg.Namespace, "database", cfg.Database)
	return store
}
