// Package deck implements the Deck repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package deck

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var deckColumns = []string{
	"d.id", "d.user_id", "d.name", "d.total_cards", "d.created_at", "d.updated_at", "d.deleted_at",
}

// Row is the scanned shape of a decks row.
type Row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Name       string     `db:"name"`
	TotalCards int        `db:"total_cards"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type deckCountRow struct {
	Row
	CardCount int `db:"card_count"`
}

type deckRatingRow struct {
	Row
	AvgRating float64 `db:"avg_rating"`
}

// visibleDecks selects the non-deleted decks of a user.
func visibleDecks(userID uuid.UUID, extra ...string) sq.SelectBuilder {
	return postgres.Builder().
		Select(append(append([]string{}, deckColumns...), extra...)...).
		From("decks d").
		Where(sq.Eq{"d.user_id": userID}).
		Where("d.deleted_at IS NULL")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the user's non-deleted decks, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	query := visibleDecks(userID).OrderBy("d.created_at", "d.id")

	var rows []Row
	if err := r.selectRows(ctx, &rows, query); err != nil {
		return nil, postgres.MapError(err, "decks of user", userID)
	}

	decks := make([]domain.Deck, len(rows))
	for i := range rows {
		decks[i] = toDomain(rows[i])
	}
	return decks, nil
}

// GetOwned returns a non-deleted deck owned by the user.
// Returns domain.ErrNotFound if the deck does not exist, is deleted or belongs to another user.
func (r *Repo) GetOwned(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	query := visibleDecks(userID).Where(sq.Eq{"d.id": deckID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	deck := toDomain(row)
	return &deck, nil
}

// ListSmall returns decks holding between 1 and maxCards non-deleted cards.
func (r *Repo) ListSmall(ctx context.Context, userID uuid.UUID, maxCards int) ([]domain.DeckCardCount, error) {
	query := visibleDecks(userID, "count(f.id) AS card_count").
		Join("flashcards f ON f.deck_id = d.id AND f.deleted_at IS NULL").
		GroupBy("d.id").
		Having("count(f.id) BETWEEN 1 AND ?", maxCards).
		OrderBy("d.created_at", "d.id")

	var rows []deckCountRow
	if err := r.selectRows(ctx, &rows, query); err != nil {
		return nil, postgres.MapError(err, "small decks of user", userID)
	}

	result := make([]domain.DeckCardCount, len(rows))
	for i := range rows {
		result[i] = domain.DeckCardCount{Deck: toDomain(rows[i].Row), CardCount: rows[i].CardCount}
	}
	return result, nil
}

// ListAbandoned returns decks with at least one non-deleted card whose
// next review is older than cutoff.
func (r *Repo) ListAbandoned(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Deck, error) {
	query := visibleDecks(userID).
		Where(sq.Expr(
			"EXISTS (SELECT 1 FROM flashcards f WHERE f.deck_id = d.id AND f.deleted_at IS NULL AND f.next_review < ?)",
			cutoff,
		)).
		OrderBy("d.created_at", "d.id")

	var rows []Row
	if err := r.selectRows(ctx, &rows, query); err != nil {
		return nil, postgres.MapError(err, "abandoned decks of user", userID)
	}

	decks := make([]domain.Deck, len(rows))
	for i := range rows {
		decks[i] = toDomain(rows[i])
	}
	return decks, nil
}

// ListLowRating returns decks whose reviews since the given time average
// below threshold, lowest average first.
func (r *Repo) ListLowRating(ctx context.Context, userID uuid.UUID, since time.Time, threshold float64) ([]domain.DeckRating, error) {
	query := visibleDecks(userID, "avg(cr.rating)::float8 AS avg_rating").
		Join("flashcards f ON f.deck_id = d.id AND f.deleted_at IS NULL").
		Join("card_reviews cr ON cr.flashcard_id = f.id").
		Where(sq.GtOrEq{"cr.reviewed_at": since}).
		GroupBy("d.id").
		Having("avg(cr.rating) < ?", threshold).
		OrderBy("avg_rating", "d.created_at", "d.id")

	var rows []deckRatingRow
	if err := r.selectRows(ctx, &rows, query); err != nil {
		return nil, postgres.MapError(err, "low rating decks of user", userID)
	}

	result := make([]domain.DeckRating, len(rows))
	for i := range rows {
		result[i] = domain.DeckRating{Deck: toDomain(rows[i].Row), AvgRating: rows[i].AvgRating}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// RefreshTotalCards recomputes total_cards from the deck's non-deleted cards
// and returns the new value.
func (r *Repo) RefreshTotalCards(ctx context.Context, deckID uuid.UUID) (int, error) {
	query := postgres.Builder().
		Update("decks").
		Set("total_cards", sq.Expr("(SELECT count(*) FROM flashcards f WHERE f.deck_id = ? AND f.deleted_at IS NULL)", deckID)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": deckID}).
		Suffix("RETURNING total_cards")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "deck", deckID)
	}
	return total, nil
}

// ReconcileTotalCards fixes total_cards of every non-deleted deck whose
// stored value drifted from the live card count. Returns the number of
// decks updated.
func (r *Repo) ReconcileTotalCards(ctx context.Context) (int64, error) {
	const reconcileSQL = `
UPDATE decks d
SET total_cards = c.live, updated_at = now()
FROM (
    SELECT d2.id, count(f.id) AS live
    FROM decks d2
    LEFT JOIN flashcards f ON f.deck_id = d2.id AND f.deleted_at IS NULL
    WHERE d2.deleted_at IS NULL
    GROUP BY d2.id
) c
WHERE d.id = c.id AND d.total_cards <> c.live`

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, reconcileSQL)
	if err != nil {
		return 0, postgres.MapError(err, "decks", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectRows(ctx context.Context, dst any, query sq.SelectBuilder) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), dst, sql, args...)
}

func toDomain(row Row) domain.Deck {
	return domain.Deck{
		ID:         row.ID,
		UserID:     row.UserID,
		Name:       row.Name,
		TotalCards: row.TotalCards,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		DeletedAt:  row.DeletedAt,
	}
}
