package progress

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// GetDashboard computes deck stats, due cards and recommendations in
// parallel. Any failing part fails the whole dashboard.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	var (
		stats []domain.DeckStat
		due   domain.DueCards
		recs  []domain.Recommendation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.deckStats(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		due, err = s.dueCards(gctx, userID, s.cfg.DueCardsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		recs, err = s.recommendations(gctx, userID, s.cfg.RecommendationLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.Int("decks", len(stats)),
		slog.Int("total_due", due.TotalDue),
		slog.Int("recommendations", len(recs)),
	)

	return domain.Dashboard{
		DeckStats:       stats,
		DueCards:        due.Cards,
		TotalDue:        due.TotalDue,
		Recommendations: recs,
	}, nil
}
