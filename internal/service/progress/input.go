package progress

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// maxCardTextLength bounds the front/back text of a quick-created card.
const maxCardTextLength = 10_000

// GetDueCardsInput holds the parameters for fetching due cards.
// Limit 0 selects the configured default.
type GetDueCardsInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetDueCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxDueCardsLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetRecommendationsInput holds the parameters for generating recommendations.
// Limit 0 selects the configured default.
type GetRecommendationsInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetRecommendationsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxRecommendationLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 10"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// QuickCreateInput holds the parameters for creating a flashcard from the dashboard.
type QuickCreateInput struct {
	DeckID uuid.UUID
	Front  string
	Back   string
}

// Validate checks all fields and collects all errors.
func (i *QuickCreateInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = appendTextErrors(errs, "front", i.Front)
	errs = appendTextErrors(errs, "back", i.Back)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendTextErrors(errs []domain.FieldError, field, value string) []domain.FieldError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > maxCardTextLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 10000 characters"})
	}
	return errs
}
