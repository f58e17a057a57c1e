package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/loader"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type deckCardRepo interface {
	ListByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) (map[uuid.UUID][]domain.Flashcard, error)
}

// RouterDeps holds everything the HTTP surface needs.
type RouterDeps struct {
	Logger         *slog.Logger
	Tokens         tokenValidator
	Cards          deckCardRepo
	Dashboard      *DashboardHandler
	Health         *HealthHandler
	CORS           config.CORSConfig
	RequestTimeout time.Duration
}

// NewRouter builds the chi router. Probes are public; every dashboard route
// requires a resolved user.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Stack(deps.Logger, deps.CORS, deps.Tokens))

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		if deps.RequestTimeout > 0 {
			r.Use(chimw.Timeout(deps.RequestTimeout))
		}
		r.Use(loader.Middleware(deps.Cards))

		r.Get("/flashcard-stats", deps.Dashboard.FlashcardStats)
		r.Get("/deck-stats", deps.Dashboard.DeckStats)
		r.Get("/deck-stats/export", deps.Dashboard.ExportDeckStats)
		r.Get("/due-cards", deps.Dashboard.DueCards)
		r.Get("/recommendations", deps.Dashboard.Recommendations)
		r.Get("/study-session-summary", deps.Dashboard.SessionSummary)
		r.Post("/quick-create-flashcard", deps.Dashboard.QuickCreateFlashcard)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
