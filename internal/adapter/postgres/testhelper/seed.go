package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var (
	clockMu  sync.Mutex
	lastSeed time.Time
)

// seedNow returns a strictly increasing timestamp so seeded rows keep
// their insertion order when sorted by created_at.
func seedNow() time.Time {
	clockMu.Lock()
	defer clockMu.Unlock()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(lastSeed) {
		now = lastSeed.Add(time.Microsecond)
	}
	lastSeed = now
	return now
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user and returns its ID.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	suffix := uniqueSuffix()
	id := uuid.New()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`,
		id, "testuser-"+suffix+"@example.com", "Test User "+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedDeck creates an empty deck for the user.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Deck {
	t.Helper()

	now := seedNow()
	deck := domain.Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, user_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		deck.ID, deck.UserID, deck.Name, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}
	return deck
}

// SeedFlashcard creates a card with the given scheduling state.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID, front string, repetitions int, nextReview *time.Time) domain.Flashcard {
	t.Helper()

	now := seedNow()
	card := domain.Flashcard{
		ID:          uuid.New(),
		DeckID:      deckID,
		Front:       front,
		Back:        "back of " + front,
		Repetitions: repetitions,
		NextReview:  nextReview,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, deck_id, front, back, repetitions, next_review, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		card.ID, card.DeckID, card.Front, card.Back, card.Repetitions, card.NextReview, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}
	return card
}

// SeedReview records a rating for a card.
func SeedReview(t *testing.T, pool *pgxpool.Pool, flashcardID uuid.UUID, rating int, reviewedAt time.Time) domain.CardReview {
	t.Helper()

	review := domain.CardReview{
		ID:          uuid.New(),
		FlashcardID: flashcardID,
		Rating:      rating,
		ReviewedAt:  reviewedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO card_reviews (id, flashcard_id, rating, reviewed_at) VALUES ($1, $2, $3, $4)`,
		review.ID, review.FlashcardID, review.Rating, review.ReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}
	return review
}

// SeedSession records a study session. Nil cardsStudied / duration are stored as NULL.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, start time.Time, cardsStudied *int, duration *float64) domain.StudySession {
	t.Helper()

	session := domain.StudySession{
		ID:              uuid.New(),
		UserID:          userID,
		StartTime:       start.UTC().Truncate(time.Microsecond),
		CardsStudied:    cardsStudied,
		DurationMinutes: duration,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_sessions (id, user_id, start_time, cards_studied, duration_minutes) VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.UserID, session.StartTime, session.CardsStudied, session.DurationMinutes,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}
	return session
}

// SoftDeleteDeck marks a deck as deleted.
func SoftDeleteDeck(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `UPDATE decks SET deleted_at = now() WHERE id = $1`, deckID); err != nil {
		t.Fatalf("testhelper: SoftDeleteDeck: %v", err)
	}
}

// SoftDeleteFlashcard marks a card as deleted.
func SoftDeleteFlashcard(t *testing.T, pool *pgxpool.Pool, cardID uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `UPDATE flashcards SET deleted_at = now() WHERE id = $1`, cardID); err != nil {
		t.Fatalf("testhelper: SoftDeleteFlashcard: %v", err)
	}
}
