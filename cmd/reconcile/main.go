// Command reconcile recomputes decks.total_cards from the live card count
// once and exits. The server runs the same pass on a schedule; this command
// is for deployments that disable the in-process job and use external cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/app"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	"github.com/heartmarshall/flashdeck-backend/internal/job"
)

func main() {
	timeout := pflag.Duration("timeout", 5*time.Minute, "overall timeout")
	pflag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	reconcile := job.NewReconcile(deck.New(pool), cfg.Jobs.ReconcileInterval, logger)
	if _, err := reconcile.RunOnce(ctx); err != nil {
		logger.Error("reconcile failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
