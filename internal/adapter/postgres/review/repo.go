// Package review implements the CardReview repository using PostgreSQL.
// Reads join through flashcards and decks to scope reviews to their owner.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Repo provides card review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listSinceSQL = `
SELECT cr.id, cr.flashcard_id, cr.rating, cr.reviewed_at
FROM card_reviews cr
JOIN flashcards f ON f.id = cr.flashcard_id
JOIN decks d ON d.id = f.deck_id
WHERE d.user_id = $1
  AND d.deleted_at IS NULL
  AND f.deleted_at IS NULL
  AND cr.reviewed_at >= $2
ORDER BY cr.reviewed_at, cr.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListSince returns the user's reviews recorded at or after since, oldest first.
// Reviews of deleted cards or of cards in deleted decks are excluded.
func (r *Repo) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.CardReview, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listSinceSQL, userID, since)
	if err != nil {
		return nil, postgres.MapError(err, "reviews of user", userID)
	}
	defer rows.Close()

	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, postgres.MapError(err, "reviews of user", userID)
	}

	return reviews, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReviews(rows pgx.Rows) ([]domain.CardReview, error) {
	reviews := []domain.CardReview{}
	for rows.Next() {
		var (
			id          uuid.UUID
			flashcardID uuid.UUID
			rating      int16
			reviewedAt  time.Time
		)

		if err := rows.Scan(&id, &flashcardID, &rating, &reviewedAt); err != nil {
			return nil, fmt.Errorf("scan card_review: %w", err)
		}

		reviews = append(reviews, domain.CardReview{
			ID:          id,
			FlashcardID: flashcardID,
			Rating:      int(rating),
			ReviewedAt:  reviewedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
