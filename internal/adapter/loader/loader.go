// Package loader provides per-request DataLoaders that batch deck card reads
// issued by concurrent goroutines into a single SQL call.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type cardRepo interface {
	ListByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) (map[uuid.UUID][]domain.Flashcard, error)
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	CardsByDeckID *dataloader.Loader[uuid.UUID, []domain.Flashcard]
}

// NewLoaders creates a new set of DataLoaders backed by the card repository.
// Must be called per request: loaders cache results for their lifetime.
func NewLoaders(repo cardRepo) *Loaders {
	return &Loaders{
		CardsByDeckID: dataloader.NewBatchedLoader(
			newCardsBatchFn(repo),
			dataloader.WithWait[uuid.UUID, []domain.Flashcard](wait),
			dataloader.WithBatchCapacity[uuid.UUID, []domain.Flashcard](maxBatch),
		),
	}
}

func newCardsBatchFn(repo cardRepo) dataloader.BatchFunc[uuid.UUID, []domain.Flashcard] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Flashcard] {
		grouped, err := repo.ListByDeckIDs(ctx, keys)

		results := make([]*dataloader.Result[[]domain.Flashcard], len(keys))
		for i, key := range keys {
			switch cards, ok := grouped[key]; {
			case err != nil:
				results[i] = &dataloader.Result[[]domain.Flashcard]{Error: err}
			case ok:
				results[i] = &dataloader.Result[[]domain.Flashcard]{Data: cards}
			default:
				results[i] = &dataloader.Result[[]domain.Flashcard]{Data: []domain.Flashcard{}}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}

// Middleware creates an HTTP middleware that instantiates per-request
// loaders and stores them in the request context.
func Middleware(repo cardRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repo))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ---------------------------------------------------------------------------
// CardSource
// ---------------------------------------------------------------------------

// CardSource lists the cards of one deck. Inside a request carrying loaders
// the call is batched; otherwise it goes straight to the repository.
type CardSource struct {
	repo cardRepo
}

// NewCardSource creates a CardSource over the given repository.
func NewCardSource(repo cardRepo) *CardSource {
	return &CardSource{repo: repo}
}

// ListByDeck returns the non-deleted cards of a deck.
func (s *CardSource) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	if l, ok := FromContext(ctx); ok {
		return l.CardsByDeckID.Load(ctx, deckID)()
	}

	grouped, err := s.repo.ListByDeckIDs(ctx, []uuid.UUID{deckID})
	if err != nil {
		return nil, err
	}
	if cards, ok := grouped[deckID]; ok {
		return cards, nil
	}
	return []domain.Flashcard{}, nil
}
