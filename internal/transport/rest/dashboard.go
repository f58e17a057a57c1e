package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/report"
	"github.com/heartmarshall/flashdeck-backend/internal/service/progress"
)

// maxRequestBody caps the quick-create payload: two texts of up to 10000
// runes each plus JSON framing.
const maxRequestBody = 128 << 10

type progressService interface {
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	GetDeckStats(ctx context.Context) ([]domain.DeckStat, error)
	GetDueCards(ctx context.Context, input progress.GetDueCardsInput) (domain.DueCards, error)
	GetRecommendations(ctx context.Context, input progress.GetRecommendationsInput) ([]domain.Recommendation, error)
	GetSessionSummary(ctx context.Context) (domain.SessionSummary, error)
	QuickCreateFlashcard(ctx context.Context, input progress.QuickCreateInput) (domain.QuickCreateResult, error)
}

// DashboardHandler serves the /api/dashboard endpoints.
type DashboardHandler struct {
	svc   progressService
	log   *slog.Logger
	clock func() time.Time
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc progressService, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc:   svc,
		log:   log.With("handler", "dashboard"),
		clock: time.Now,
	}
}

// FlashcardStats returns deck stats, due cards and recommendations in one body.
func (h *DashboardHandler) FlashcardStats(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, dashboardResponse{
		DeckStats:       toDeckStats(dash.DeckStats),
		DueCards:        toDueCards(dash.DueCards),
		TotalDue:        dash.TotalDue,
		Recommendations: toRecommendations(dash.Recommendations),
	})
}

func (h *DashboardHandler) DeckStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetDeckStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, toDeckStats(stats))
}

func (h *DashboardHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	due, err := h.svc.GetDueCards(r.Context(), progress.GetDueCardsInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, dueCardsResponse{DueCards: toDueCards(due.Cards), TotalDue: due.TotalDue})
}

func (h *DashboardHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recs, err := h.svc.GetRecommendations(r.Context(), progress.GetRecommendationsInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, toRecommendations(recs))
}

func (h *DashboardHandler) SessionSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetSessionSummary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, toSessionSummary(summary))
}

// ExportDeckStats streams the deck stats as an XLSX attachment. The workbook
// is rendered into memory first so a failure still yields a JSON error.
func (h *DashboardHandler) ExportDeckStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetDeckStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteDeckStats(&buf, stats); err != nil {
		handleError(h.log, w, r, fmt.Errorf("render deck stats: %w", err))
		return
	}

	filename := fmt.Sprintf("deck-stats-%s.xlsx", h.clock().UTC().Format(time.DateOnly))
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WarnContext(r.Context(), "write export", slog.String("error", err.Error()))
	}
}

func (h *DashboardHandler) QuickCreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req quickCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.QuickCreateFlashcard(r.Context(), progress.QuickCreateInput{
		DeckID: uuid.MustParse(req.DeckID),
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, quickCreateResponse{
		Success:   true,
		Flashcard: toFlashcard(res),
		Message:   "Flashcard created successfully",
	})
}

// ---------------------------------------------------------------------------
// Request parsing
// ---------------------------------------------------------------------------

// parseLimit reads the optional ?limit= query parameter. Absent means 0,
// which the service replaces with its default.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("limit", "must be an integer")
	}
	return limit, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", "request body too large")
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "request body is empty")
		default:
			return domain.NewValidationError("body", "malformed JSON")
		}
	}
	return nil
}
