// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [--command up|down|reset|status|version] [--dsn postgres://...]
//
// Without --dsn the DSN comes from the usual configuration (CONFIG_PATH,
// config.yaml or DATABASE_DSN).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/app"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
)

func main() {
	var (
		command = pflag.StringP("command", "c", postgres.MigrateUp, "migration command: up, down, reset, status, version")
		dsn     = pflag.String("dsn", "", "database DSN (overrides configuration)")
		timeout = pflag.Duration("timeout", 5*time.Minute, "overall timeout")
	)
	pflag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	logger, target, err := resolve(*dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := postgres.OpenSQL(ctx, target)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, *command, logger); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// resolve returns a logger and the DSN. An explicit DSN skips config loading,
// so migrations can run without the auth secret being set.
func resolve(dsn string) (*slog.Logger, string, error) {
	if dsn != "" {
		return app.NewLogger(config.LogConfig{Level: "info", Format: "text"}), dsn, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}
	return app.NewLogger(cfg.Log), cfg.Database.DSN, nil
}
