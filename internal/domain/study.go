package domain

import (
	"time"

	"github.com/google/uuid"
)

// MasteryRepetitions is the repetition count from which a card counts as mastered.
const MasteryRepetitions = 3

// CorrectRatingThreshold is the minimum review rating (0–4 scale) counted as correct.
// Not related to MasteryRepetitions.
const CorrectRatingThreshold = 3

// DeckStat holds mastery statistics for a single deck.
// Mastered + InProgress + NotStarted == TotalCards.
type DeckStat struct {
	DeckID         uuid.UUID
	DeckName       string
	TotalCards     int
	Mastered       int
	InProgress     int
	NotStarted     int
	CompletionRate float64
}

// DueCardEntry is a condensed view of a card that is due for review.
type DueCardEntry struct {
	CardID     uuid.UUID
	Front      string
	DeckName   string
	DeckID     uuid.UUID
	NextReview *time.Time
}

// DueCards holds the (limited) due cards and the total number of due cards.
type DueCards struct {
	Cards    []DueCardEntry
	TotalDue int
}

// Recommendation is a rule-based study suggestion. Never persisted.
type Recommendation struct {
	Type        RecommendationType
	Title       string
	Description string
	Action      RecommendationAction
	DeckID      uuid.UUID
	Priority    RecommendationPriority
}

// PeriodMetrics aggregates study sessions within a time window.
type PeriodMetrics struct {
	CardsStudied     int
	StudyTimeMinutes float64
	SessionsCount    int
}

// SessionSummary holds today's and this week's study metrics.
type SessionSummary struct {
	Today              PeriodMetrics
	Weekly             PeriodMetrics
	StreakDays         int
	AccuracyPercentage float64
}

// Dashboard merges deck stats, due cards and recommendations.
type Dashboard struct {
	DeckStats       []DeckStat
	DueCards        []DueCardEntry
	TotalDue        int
	Recommendations []Recommendation
}

// QuickCreateResult is returned after a flashcard is created from the dashboard.
type QuickCreateResult struct {
	Card     Flashcard
	DeckName string
}

// DeckCardCount pairs a deck with its number of non-deleted cards.
type DeckCardCount struct {
	Deck      Deck
	CardCount int
}

// DeckRating pairs a deck with the average rating of its recent reviews.
type DeckRating struct {
	Deck      Deck
	AvgRating float64
}

// DueFlashcard is a due card joined with the name of its deck.
type DueFlashcard struct {
	Flashcard
	DeckName string
}

// ProgressConfig holds dashboard defaults (pure domain type).
type ProgressConfig struct {
	Location            *time.Location
	DueCardsLimit       int
	RecommendationLimit int
}
