package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of flashcards owned by a user.
type Deck struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	TotalCards int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// IsDeleted reports whether the deck is soft-deleted.
func (d *Deck) IsDeleted() bool {
	return d.DeletedAt != nil
}

// Flashcard is a front/back study item. Repetitions and NextReview are
// maintained by the scheduler and only read here.
type Flashcard struct {
	ID          uuid.UUID
	DeckID      uuid.UUID
	Front       string
	Back        string
	Repetitions int
	NextReview  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted reports whether the card is soft-deleted.
func (c *Flashcard) IsDeleted() bool {
	return c.DeletedAt != nil
}

// IsDue returns true if the card has a review time at or before now.
// Cards without a review time are never due.
func (c *Flashcard) IsDue(now time.Time) bool {
	if c.NextReview == nil {
		return false
	}
	return !c.NextReview.After(now)
}

// Mastery classifies the card by its repetition count.
//   - repetitions >= MasteryRepetitions: mastered
//   - 0 < repetitions < MasteryRepetitions: in progress
//   - otherwise: not started
func (c *Flashcard) Mastery() MasteryLevel {
	switch {
	case c.Repetitions >= MasteryRepetitions:
		return MasteryLevelMastered
	case c.Repetitions > 0:
		return MasteryLevelInProgress
	default:
		return MasteryLevelNotStarted
	}
}

// CardReview is a single rating given to a flashcard.
type CardReview struct {
	ID          uuid.UUID
	FlashcardID uuid.UUID
	Rating      int
	ReviewedAt  time.Time
}

// IsCorrect reports whether the rating counts towards accuracy.
func (r *CardReview) IsCorrect() bool {
	return r.Rating >= CorrectRatingThreshold
}

// StudySession is a timed block of study activity.
// Nil CardsStudied / DurationMinutes mean zero.
type StudySession struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	StartTime       time.Time
	CardsStudied    *int
	DurationMinutes *float64
}

// CardsStudiedOrZero returns CardsStudied, treating nil as zero.
func (s *StudySession) CardsStudiedOrZero() int {
	if s.CardsStudied == nil {
		return 0
	}
	return *s.CardsStudied
}

// DurationOrZero returns DurationMinutes, treating nil as zero.
func (s *StudySession) DurationOrZero() float64 {
	if s.DurationMinutes == nil {
		return 0
	}
	return *s.DurationMinutes
}
