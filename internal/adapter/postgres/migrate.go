package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/flashdeck-backend/migrations"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateReset   = "reset"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// OpenSQL opens a database/sql handle over the pgx driver. goose needs *sql.DB.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewMigrationProvider returns a goose provider over the embedded migrations.
// NewProvider handles $$-delimited PL/pgSQL bodies, unlike the legacy goose.Up.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Migrate runs a migration command and logs every applied or listed version.
func Migrate(ctx context.Context, db *sql.DB, command string, log *slog.Logger) error {
	provider, err := NewMigrationProvider(db)
	if err != nil {
		return err
	}

	log = log.With("component", "migrations", "command", command)

	switch command {
	case MigrateUp:
		results, err := provider.Up(ctx)
		for _, r := range results {
			log.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		log.InfoContext(ctx, "migrations up to date", slog.Int("applied", len(results)))

	case MigrateDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		if r != nil {
			log.InfoContext(ctx, "migration rolled back", slog.Int64("version", r.Source.Version))
		}

	case MigrateReset:
		results, err := provider.DownTo(ctx, 0)
		if err != nil {
			return fmt.Errorf("goose reset: %w", err)
		}
		log.InfoContext(ctx, "migrations reset", slog.Int("rolled_back", len(results)))

	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, st := range statuses {
			log.InfoContext(ctx, "migration status",
				slog.Int64("version", st.Source.Version),
				slog.String("file", st.Source.Path),
				slog.String("state", string(st.State)),
			)
		}

	case MigrateVersion:
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("goose version: %w", err)
		}
		log.InfoContext(ctx, "database version", slog.Int64("version", version))

	default:
		return fmt.Errorf("unknown migration command %q (expected up, down, reset, status or version)", command)
	}

	return nil
}
