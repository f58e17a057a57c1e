package rest

import (
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Response bodies
// ---------------------------------------------------------------------------

type deckStatResponse struct {
	DeckID         string  `json:"deck_id"`
	DeckName       string  `json:"deck_name"`
	TotalCards     int     `json:"total_cards"`
	Mastered       int     `json:"mastered"`
	InProgress     int     `json:"in_progress"`
	NotStarted     int     `json:"not_started"`
	CompletionRate float64 `json:"completion_rate"`
}

type dueCardResponse struct {
	ID         string     `json:"id"`
	Front      string     `json:"front"`
	DeckName   string     `json:"deck_name"`
	DeckID     string     `json:"deck_id"`
	NextReview *time.Time `json:"next_review"`
}

type dueCardsResponse struct {
	DueCards []dueCardResponse `json:"due_cards"`
	TotalDue int               `json:"total_due"`
}

type recommendationResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	DeckID      string `json:"deck_id"`
	Priority    string `json:"priority"`
}

type dashboardResponse struct {
	DeckStats       []deckStatResponse       `json:"deck_stats"`
	DueCards        []dueCardResponse        `json:"due_cards"`
	TotalDue        int                      `json:"total_due"`
	Recommendations []recommendationResponse `json:"recommendations"`
}

type periodResponse struct {
	CardsStudied     int     `json:"cards_studied"`
	StudyTimeMinutes float64 `json:"study_time_minutes"`
	SessionsCount    int     `json:"sessions_count"`
}

type sessionSummaryResponse struct {
	Today              periodResponse `json:"today"`
	Weekly             periodResponse `json:"weekly"`
	StreakDays         int            `json:"streak_days"`
	AccuracyPercentage float64        `json:"accuracy_percentage"`
}

type flashcardResponse struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	DeckName  string    `json:"deck_name"`
	CreatedAt time.Time `json:"created_at"`
}

type quickCreateResponse struct {
	Success   bool              `json:"success"`
	Flashcard flashcardResponse `json:"flashcard"`
	Message   string            `json:"message"`
}

// ---------------------------------------------------------------------------
// Request bodies
// ---------------------------------------------------------------------------

type quickCreateRequest struct {
	DeckID string `json:"deck_id" validate:"required,uuid"`
	Front  string `json:"front"   validate:"required,max=10000"`
	Back   string `json:"back"    validate:"required,max=10000"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toDeckStats(stats []domain.DeckStat) []deckStatResponse {
	out := make([]deckStatResponse, len(stats))
	for i, s := range stats {
		out[i] = deckStatResponse{
			DeckID:         s.DeckID.String(),
			DeckName:       s.DeckName,
			TotalCards:     s.TotalCards,
			Mastered:       s.Mastered,
			InProgress:     s.InProgress,
			NotStarted:     s.NotStarted,
			CompletionRate: s.CompletionRate,
		}
	}
	return out
}

func toDueCards(cards []domain.DueCardEntry) []dueCardResponse {
	out := make([]dueCardResponse, len(cards))
	for i, c := range cards {
		out[i] = dueCardResponse{
			ID:         c.CardID.String(),
			Front:      c.Front,
			DeckName:   c.DeckName,
			DeckID:     c.DeckID.String(),
			NextReview: c.NextReview,
		}
	}
	return out
}

func toRecommendations(recs []domain.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = recommendationResponse{
			Type:        r.Type.String(),
			Title:       r.Title,
			Description: r.Description,
			Action:      r.Action.String(),
			DeckID:      r.DeckID.String(),
			Priority:    r.Priority.String(),
		}
	}
	return out
}

func toPeriod(p domain.PeriodMetrics) periodResponse {
	return periodResponse{
		CardsStudied:     p.CardsStudied,
		StudyTimeMinutes: p.StudyTimeMinutes,
		SessionsCount:    p.SessionsCount,
	}
}

func toSessionSummary(s domain.SessionSummary) sessionSummaryResponse {
	return sessionSummaryResponse{
		Today:              toPeriod(s.Today),
		Weekly:             toPeriod(s.Weekly),
		StreakDays:         s.StreakDays,
		AccuracyPercentage: s.AccuracyPercentage,
	}
}

func toFlashcard(r domain.QuickCreateResult) flashcardResponse {
	return flashcardResponse{
		ID:        r.Card.ID.String(),
		DeckID:    r.Card.DeckID.String(),
		Front:     r.Card.Front,
		Back:      r.Card.Back,
		DeckName:  r.DeckName,
		CreatedAt: r.Card.CreatedAt,
	}
}
