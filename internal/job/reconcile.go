// Package job runs background maintenance on a schedule.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// runTimeout bounds a single reconciliation pass.
const runTimeout = 2 * time.Minute

type deckReconciler interface {
	ReconcileTotalCards(ctx context.Context) (int64, error)
}

// Reconcile keeps decks.total_cards equal to the live card count. Writes
// through the quick-create path refresh the counter already; this catches
// drift from writes made elsewhere.
type Reconcile struct {
	decks     deckReconciler
	log       *slog.Logger
	scheduler *gocron.Scheduler
	interval  time.Duration
}

// NewReconcile creates a job that runs every interval once started.
func NewReconcile(decks deckReconciler, interval time.Duration, log *slog.Logger) *Reconcile {
	return &Reconcile{
		decks:     decks,
		log:       log.With("job", "reconcile_total_cards"),
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
	}
}

// RunOnce performs a single reconciliation pass and returns the number of
// decks that were corrected.
func (j *Reconcile) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	start := time.Now()
	n, err := j.decks.ReconcileTotalCards(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile total cards: %w", err)
	}

	j.log.InfoContext(ctx, "decks reconciled",
		slog.Int64("updated", n),
		slog.Duration("duration", time.Since(start)),
	)
	return n, nil
}

// Start schedules the job and returns immediately. The first pass runs right
// away; overlapping passes are skipped.
func (j *Reconcile) Start() error {
	_, err := j.scheduler.Every(j.interval).SingletonMode().Do(j.tick)
	if err != nil {
		return fmt.Errorf("schedule reconcile: %w", err)
	}
	j.scheduler.StartAsync()
	j.log.Info("job scheduled", slog.Duration("interval", j.interval))
	return nil
}

// Stop halts the scheduler and waits for a running pass to finish.
func (j *Reconcile) Stop() {
	j.scheduler.Stop()
}

func (j *Reconcile) tick() {
	if _, err := j.RunOnce(context.Background()); err != nil {
		j.log.Error("reconcile failed", slog.String("error", err.Error()))
	}
}
