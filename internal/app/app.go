package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/loader"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/job"
	"github.com/heartmarshall/flashdeck-backend/internal/service/progress"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into the progress service and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Progress.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories
	deckRepo := deck.New(pool)
	cardRepo := flashcard.New(pool)
	sessionRepo := session.New(pool)
	reviewRepo := review.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	progressSvc := progress.NewService(
		logger,
		deckRepo,
		loader.NewCardSource(cardRepo),
		cardRepo,
		sessionRepo,
		reviewRepo,
		txm,
		domain.ProgressConfig{
			Location:            cfg.Progress.Location,
			DueCardsLimit:       cfg.Progress.DueCardsLimit,
			RecommendationLimit: cfg.Progress.RecommendationLimit,
		},
	)

	// Transport
	router := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		Tokens:         auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Cards:          cardRepo,
		Dashboard:      rest.NewDashboardHandler(progressSvc, logger),
		Health:         rest.NewHealthHandler(pool, BuildVersion(), logger),
		CORS:           cfg.CORS,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// Background jobs
	if cfg.Jobs.ReconcileEnabled {
		reconcile := job.NewReconcile(deckRepo, cfg.Jobs.ReconcileInterval, logger)
		if err := reconcile.Start(); err != nil {
			return err
		}
		defer reconcile.Stop()
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
