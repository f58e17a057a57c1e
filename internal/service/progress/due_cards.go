package progress

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

const (
	// DefaultDueCardsLimit is used when the caller passes limit 0.
	DefaultDueCardsLimit = 5
	// MaxDueCardsLimit is the largest accepted due-cards limit.
	MaxDueCardsLimit = 100

	// frontPreviewLength is the number of characters kept from a card's front text.
	frontPreviewLength = 100
	ellipsis           = "..."
)

// GetDueCards returns the most overdue cards of the user and the total due count.
func (s *Service) GetDueCards(ctx context.Context, input GetDueCardsInput) (domain.DueCards, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DueCards{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.DueCards{}, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DueCardsLimit
	}

	due, err := s.dueCards(ctx, userID, limit)
	if err != nil {
		return domain.DueCards{}, err
	}

	s.log.InfoContext(ctx, "due cards selected",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(due.Cards)),
		slog.Int("total_due", due.TotalDue),
	)

	return due, nil
}

func (s *Service) dueCards(ctx context.Context, userID uuid.UUID, limit int) (domain.DueCards, error) {
	now := s.now()

	rows, total, err := s.flashcards.ListDue(ctx, userID, now, limit)
	if err != nil {
		return domain.DueCards{}, fmt.Errorf("list due cards: %w", err)
	}

	// Most overdue first; the store already orders rows, the sort keeps
	// the contract when a source returns them unordered.
	slices.SortStableFunc(rows, func(a, b domain.DueFlashcard) int {
		return compareNextReview(a.NextReview, b.NextReview)
	})

	entries := make([]domain.DueCardEntry, 0, min(len(rows), limit))
	for i := range rows {
		if len(entries) == limit {
			break
		}
		card := rows[i]
		if card.IsDeleted() || !card.IsDue(now) {
			continue
		}
		entries = append(entries, domain.DueCardEntry{
			CardID:     card.ID,
			Front:      truncateFront(card.Front),
			DeckName:   card.DeckName,
			DeckID:     card.DeckID,
			NextReview: card.NextReview,
		})
	}

	return domain.DueCards{Cards: entries, TotalDue: total}, nil
}

// compareNextReview orders timestamps ascending with nil last.
func compareNextReview(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}

// truncateFront keeps the first frontPreviewLength characters and appends
// an ellipsis when the text is longer.
func truncateFront(front string) string {
	runes := []rune(front)
	if len(runes) <= frontPreviewLength {
		return front
	}
	return string(runes[:frontPreviewLength]) + ellipsis
}
