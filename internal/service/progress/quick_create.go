package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// QuickCreateFlashcard adds a card to one of the user's decks and refreshes
// the deck's card count in the same transaction.
func (s *Service) QuickCreateFlashcard(ctx context.Context, input QuickCreateInput) (domain.QuickCreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.QuickCreateResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.QuickCreateResult{}, err
	}

	front := strings.TrimSpace(input.Front)
	back := strings.TrimSpace(input.Back)

	var result domain.QuickCreateResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deck, err := s.decks.GetOwned(txCtx, userID, input.DeckID)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		card, err := s.flashcards.Create(txCtx, deck.ID, front, back)
		if err != nil {
			return fmt.Errorf("create flashcard: %w", err)
		}

		if _, err := s.decks.RefreshTotalCards(txCtx, deck.ID); err != nil {
			return fmt.Errorf("refresh total cards: %w", err)
		}

		result = domain.QuickCreateResult{Card: *card, DeckName: deck.Name}
		return nil
	})
	if err != nil {
		return domain.QuickCreateResult{}, err
	}

	s.log.InfoContext(ctx, "flashcard quick-created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.String("card_id", result.Card.ID.String()),
	)

	return result, nil
}
