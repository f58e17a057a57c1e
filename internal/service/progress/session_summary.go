package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

const (
	// WeeklyWindow is the trailing window of the weekly metrics.
	WeeklyWindow = 7 * 24 * time.Hour
	// AccuracyWindow is the review history used for the accuracy percentage.
	AccuracyWindow = 30 * 24 * time.Hour
)

// GetSessionSummary returns today's and this week's study metrics, the
// current streak and the 30-day review accuracy.
func (s *Service) GetSessionSummary(ctx context.Context) (domain.SessionSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SessionSummary{}, domain.ErrUnauthorized
	}

	now := s.now()
	dayStart, dayEnd := DayBounds(now, s.location())

	todaySessions, err := s.sessions.ListInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("list today sessions: %w", err)
	}

	weeklySessions, err := s.sessions.ListInRange(ctx, userID, now.Add(-WeeklyWindow), dayEnd)
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("list weekly sessions: %w", err)
	}

	reviews, err := s.reviews.ListSince(ctx, userID, now.Add(-AccuracyWindow))
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("list recent reviews: %w", err)
	}

	summary := domain.SessionSummary{
		Today:              aggregateSessions(todaySessions),
		Weekly:             aggregateSessions(weeklySessions),
		StreakDays:         s.calculateStreak(ctx, userID, now),
		AccuracyPercentage: accuracy(reviews),
	}

	s.log.InfoContext(ctx, "session summary computed",
		slog.String("user_id", userID.String()),
		slog.Int("today_sessions", summary.Today.SessionsCount),
		slog.Int("weekly_sessions", summary.Weekly.SessionsCount),
		slog.Int("streak", summary.StreakDays),
		slog.Float64("accuracy", summary.AccuracyPercentage),
	)

	return summary, nil
}

func aggregateSessions(sessions []domain.StudySession) domain.PeriodMetrics {
	m := domain.PeriodMetrics{SessionsCount: len(sessions)}
	for i := range sessions {
		m.CardsStudied += sessions[i].CardsStudiedOrZero()
		m.StudyTimeMinutes += sessions[i].DurationOrZero()
	}
	return m
}

// accuracy returns the share of correct reviews in percent, 0 without reviews.
func accuracy(reviews []domain.CardReview) float64 {
	correct := 0
	for i := range reviews {
		if reviews[i].IsCorrect() {
			correct++
		}
	}
	return percentage(correct, len(reviews))
}
