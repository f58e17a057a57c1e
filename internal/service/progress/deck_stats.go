package progress

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// deckFetchConcurrency bounds parallel card fetches for one deck-stats call.
const deckFetchConcurrency = 32

// GetDeckStats returns mastery statistics for every visible deck of the user.
func (s *Service) GetDeckStats(ctx context.Context) ([]domain.DeckStat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.deckStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck stats computed",
		slog.String("user_id", userID.String()),
		slog.Int("decks", len(stats)),
	)

	return stats, nil
}

func (s *Service) deckStats(ctx context.Context, userID uuid.UUID) ([]domain.DeckStat, error) {
	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	stats := make([]domain.DeckStat, len(decks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(deckFetchConcurrency)

	for i, deck := range decks {
		g.Go(func() error {
			cards, err := s.cards.ListByDeck(gctx, deck.ID)
			if err != nil {
				return fmt.Errorf("list cards of deck %s: %w", deck.ID, err)
			}
			stats[i] = buildDeckStat(deck, cards)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// buildDeckStat classifies cards by mastery level. Deleted cards are skipped.
func buildDeckStat(deck domain.Deck, cards []domain.Flashcard) domain.DeckStat {
	stat := domain.DeckStat{
		DeckID:   deck.ID,
		DeckName: deck.Name,
	}

	for i := range cards {
		if cards[i].IsDeleted() {
			continue
		}
		stat.TotalCards++
		switch cards[i].Mastery() {
		case domain.MasteryLevelMastered:
			stat.Mastered++
		case domain.MasteryLevelInProgress:
			stat.InProgress++
		default:
			stat.NotStarted++
		}
	}

	stat.CompletionRate = percentage(stat.Mastered, stat.TotalCards)
	return stat
}

// percentage returns 100*part/total rounded to one decimal, or 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(100 * float64(part) / float64(total))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
