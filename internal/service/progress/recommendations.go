package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

const (
	// DefaultRecommendationLimit is used when the caller passes limit 0.
	DefaultRecommendationLimit = 3
	// MaxRecommendationLimit is the largest accepted recommendation limit.
	MaxRecommendationLimit = 10

	// SmallDeckMaxCards is the largest card count for which a deck is suggested for expansion.
	SmallDeckMaxCards = 4
	// AbandonedAfter is how long a card may be overdue before its deck counts as abandoned.
	AbandonedAfter = 7 * 24 * time.Hour
	// PerformanceWindow is the review history considered for the low-rating heuristic.
	PerformanceWindow = 30 * 24 * time.Hour
	// LowRatingThreshold is the average rating below which a deck needs more practice.
	LowRatingThreshold = 2.5
)

// heuristic produces at most one recommendation, or nil when nothing matches.
type heuristic func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Recommendation, error)

// GetRecommendations returns rule-based study suggestions in priority order.
func (s *Service) GetRecommendations(ctx context.Context, input GetRecommendationsInput) ([]domain.Recommendation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.RecommendationLimit
	}

	recs, err := s.recommendations(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "recommendations generated",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(recs)),
	)

	return recs, nil
}

func (s *Service) recommendations(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Recommendation, error) {
	now := s.now()

	heuristics := []struct {
		name string
		run  heuristic
	}{
		{name: "expand deck", run: s.expandDeck},
		{name: "review abandoned", run: s.reviewAbandoned},
		{name: "improve performance", run: s.improvePerformance},
	}

	recs := make([]domain.Recommendation, 0, limit)
	for _, h := range heuristics {
		if len(recs) >= limit {
			break
		}
		rec, err := h.run(ctx, userID, now)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", h.name, err)
		}
		if rec != nil {
			recs = append(recs, *rec)
		}
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (s *Service) expandDeck(ctx context.Context, userID uuid.UUID, _ time.Time) (*domain.Recommendation, error) {
	small, err := s.decks.ListSmall(ctx, userID, SmallDeckMaxCards)
	if err != nil {
		return nil, fmt.Errorf("list small decks: %w", err)
	}

	for _, d := range small {
		if d.CardCount < 1 || d.CardCount > SmallDeckMaxCards {
			continue
		}
		return &domain.Recommendation{
			Type:        domain.RecommendationExpandDeck,
			Title:       "Expand your decks",
			Description: fmt.Sprintf("Deck %q has only %d cards. Add more to keep learning.", d.Deck.Name, d.CardCount),
			Action:      domain.ActionCreateFlashcard,
			DeckID:      d.Deck.ID,
			Priority:    domain.PriorityMedium,
		}, nil
	}
	return nil, nil
}

func (s *Service) reviewAbandoned(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Recommendation, error) {
	decks, err := s.decks.ListAbandoned(ctx, userID, now.Add(-AbandonedAfter))
	if err != nil {
		return nil, fmt.Errorf("list abandoned decks: %w", err)
	}
	if len(decks) == 0 {
		return nil, nil
	}

	deck := decks[0]
	return &domain.Recommendation{
		Type:        domain.RecommendationReviewAbandoned,
		Title:       "Pick up where you left off",
		Description: fmt.Sprintf("Deck %q has cards waiting for review for more than a week.", deck.Name),
		Action:      domain.ActionStartStudy,
		DeckID:      deck.ID,
		Priority:    domain.PriorityHigh,
	}, nil
}

func (s *Service) improvePerformance(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Recommendation, error) {
	rated, err := s.decks.ListLowRating(ctx, userID, now.Add(-PerformanceWindow), LowRatingThreshold)
	if err != nil {
		return nil, fmt.Errorf("list low rating decks: %w", err)
	}

	var worst *domain.DeckRating
	for i := range rated {
		if rated[i].AvgRating >= LowRatingThreshold {
			continue
		}
		// Ties keep the first deck.
		if worst == nil || rated[i].AvgRating < worst.AvgRating {
			worst = &rated[i]
		}
	}
	if worst == nil {
		return nil, nil
	}

	return &domain.Recommendation{
		Type:        domain.RecommendationImprovePerformance,
		Title:       "Improve your performance",
		Description: fmt.Sprintf("Your average rating in deck %q is %.1f/4. Review it again.", worst.Deck.Name, worst.AvgRating),
		Action:      domain.ActionStartStudy,
		DeckID:      worst.Deck.ID,
		Priority:    domain.PriorityHigh,
	}, nil
}
