// Package flashcard implements the Flashcard repository using PostgreSQL.
package flashcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var cardColumns = []string{
	"f.id", "f.deck_id", "f.front", "f.back", "f.repetitions", "f.next_review",
	"f.created_at", "f.updated_at", "f.deleted_at",
}

// Row is the scanned shape of a flashcards row.
type Row struct {
	ID          uuid.UUID  `db:"id"`
	DeckID      uuid.UUID  `db:"deck_id"`
	Front       string     `db:"front"`
	Back        string     `db:"back"`
	Repetitions int        `db:"repetitions"`
	NextReview  *time.Time `db:"next_review"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type dueRow struct {
	Row
	DeckName string `db:"deck_name"`
	TotalDue int    `db:"total_due"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByDeck returns the non-deleted cards of a deck, oldest first.
func (r *Repo) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	byDeck, err := r.ListByDeckIDs(ctx, []uuid.UUID{deckID})
	if err != nil {
		return nil, err
	}
	return byDeck[deckID], nil
}

// ListByDeckIDs returns the non-deleted cards of several decks in one query,
// grouped by deck ID. Decks without cards are absent from the map.
func (r *Repo) ListByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) (map[uuid.UUID][]domain.Flashcard, error) {
	if len(deckIDs) == 0 {
		return map[uuid.UUID][]domain.Flashcard{}, nil
	}

	query := postgres.Builder().
		Select(cardColumns...).
		From("flashcards f").
		Where("f.deck_id = ANY(?::uuid[])", deckIDs).
		Where("f.deleted_at IS NULL").
		OrderBy("f.deck_id", "f.created_at", "f.id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []Row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcards of decks", uuid.Nil)
	}

	result := make(map[uuid.UUID][]domain.Flashcard, len(deckIDs))
	for i := range rows {
		result[rows[i].DeckID] = append(result[rows[i].DeckID], toDomain(rows[i]))
	}
	return result, nil
}

// ListDue returns up to limit cards whose next review is at or before now,
// most overdue first, plus the total number of due cards. Only non-deleted
// cards in the user's non-deleted decks qualify.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.DueFlashcard, int, error) {
	columns := append(append([]string{}, cardColumns...), "d.name AS deck_name", "count(*) OVER () AS total_due")

	query := postgres.Builder().
		Select(columns...).
		From("flashcards f").
		Join("decks d ON d.id = f.deck_id").
		Where(sq.Eq{"d.user_id": userID}).
		Where("d.deleted_at IS NULL").
		Where("f.deleted_at IS NULL").
		Where(sq.LtOrEq{"f.next_review": now}).
		OrderBy("f.next_review", "f.id").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []dueRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "due flashcards of user", userID)
	}

	if len(rows) == 0 {
		return []domain.DueFlashcard{}, 0, nil
	}

	cards := make([]domain.DueFlashcard, len(rows))
	for i := range rows {
		cards[i] = domain.DueFlashcard{Flashcard: toDomain(rows[i].Row), DeckName: rows[i].DeckName}
	}
	return cards, rows[0].TotalDue, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new, never reviewed card into a deck.
func (r *Repo) Create(ctx context.Context, deckID uuid.UUID, front, back string) (*domain.Flashcard, error) {
	query := postgres.Builder().
		Insert("flashcards").
		Columns("deck_id", "front", "back").
		Values(deckID, front, back).
		Suffix("RETURNING " + strings.Join(bare(cardColumns), ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row Row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard in deck", deckID)
	}

	card := toDomain(row)
	return &card, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// bare strips the table alias from qualified column names.
func bare(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		if _, name, ok := strings.Cut(c, "."); ok {
			out[i] = name
			continue
		}
		out[i] = c
	}
	return out
}

func toDomain(row Row) domain.Flashcard {
	return domain.Flashcard{
		ID:          row.ID,
		DeckID:      row.DeckID,
		Front:       row.Front,
		Back:        row.Back,
		Repetitions: row.Repetitions,
		NextReview:  row.NextReview,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		DeletedAt:   row.DeletedAt,
	}
}
