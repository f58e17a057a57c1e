package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	GetOwned(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	ListSmall(ctx context.Context, userID uuid.UUID, maxCards int) ([]domain.DeckCardCount, error)
	ListAbandoned(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Deck, error)
	ListLowRating(ctx context.Context, userID uuid.UUID, since time.Time, threshold float64) ([]domain.DeckRating, error)
	RefreshTotalCards(ctx context.Context, deckID uuid.UUID) (int, error)
}

// cardSource returns the non-deleted cards of one deck. In production it is
// a batching loader, so concurrent calls collapse into a single query.
type cardSource interface {
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)
}

type flashcardRepo interface {
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.DueFlashcard, int, error)
	Create(ctx context.Context, deckID uuid.UUID, front, back string) (*domain.Flashcard, error)
}

type sessionRepo interface {
	ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.StudySession, error)
	HasStudiedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
}

type reviewRepo interface {
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.CardReview, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service computes learning-progress signals for the dashboard.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	decks      deckRepo
	cards      cardSource
	flashcards flashcardRepo
	sessions   sessionRepo
	reviews    reviewRepo
	tx         txManager
	log        *slog.Logger
	cfg        domain.ProgressConfig
	clock      func() time.Time
}

// NewService creates a new progress service.
// Zero limits in cfg fall back to DefaultDueCardsLimit / DefaultRecommendationLimit;
// a nil Location means UTC.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	cards cardSource,
	flashcards flashcardRepo,
	sessions sessionRepo,
	reviews reviewRepo,
	tx txManager,
	cfg domain.ProgressConfig,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DueCardsLimit <= 0 {
		cfg.DueCardsLimit = DefaultDueCardsLimit
	}
	if cfg.RecommendationLimit <= 0 {
		cfg.RecommendationLimit = DefaultRecommendationLimit
	}

	return &Service{
		decks:      decks,
		cards:      cards,
		flashcards: flashcards,
		sessions:   sessions,
		reviews:    reviews,
		tx:         tx,
		log:        log.With("service", "progress"),
		cfg:        cfg,
		clock:      time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

func (s *Service) location() *time.Location {
	if s.cfg.Location == nil {
		return time.UTC
	}
	return s.cfg.Location
}
