package domain

// MasteryLevel is the learning bucket of a card derived from its repetitions.
type MasteryLevel string

const (
	MasteryLevelNotStarted MasteryLevel = "NOT_STARTED"
	MasteryLevelInProgress MasteryLevel = "IN_PROGRESS"
	MasteryLevelMastered   MasteryLevel = "MASTERED"
)

func (m MasteryLevel) String() string { return string(m) }

func (m MasteryLevel) IsValid() bool {
	switch m {
	case MasteryLevelNotStarted, MasteryLevelInProgress, MasteryLevelMastered:
		return true
	}
	return false
}

// RecommendationType identifies the heuristic that produced a recommendation.
type RecommendationType string

const (
	RecommendationExpandDeck         RecommendationType = "expand_deck"
	RecommendationReviewAbandoned    RecommendationType = "review_abandoned"
	RecommendationImprovePerformance RecommendationType = "improve_performance"
)

func (t RecommendationType) String() string { return string(t) }

func (t RecommendationType) IsValid() bool {
	switch t {
	case RecommendationExpandDeck, RecommendationReviewAbandoned, RecommendationImprovePerformance:
		return true
	}
	return false
}

// RecommendationAction is the client action a recommendation links to.
type RecommendationAction string

const (
	ActionCreateFlashcard RecommendationAction = "create_flashcard"
	ActionStartStudy      RecommendationAction = "start_study"
)

func (a RecommendationAction) String() string { return string(a) }

// RecommendationPriority ranks recommendations for display.
type RecommendationPriority string

const (
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
)

func (p RecommendationPriority) String() string { return string(p) }

func (p RecommendationPriority) IsValid() bool {
	switch p {
	case PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
