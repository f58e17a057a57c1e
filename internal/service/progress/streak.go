package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MaxStreakDays caps the backward walk. Longer streaks saturate at this value.
const MaxStreakDays = 365

// calculateStreak counts consecutive local days, ending today, on which the
// user started a session with at least one studied card.
//
// Failures are logged and reported as a zero streak; the streak never fails
// the caller.
func (s *Service) calculateStreak(ctx context.Context, userID uuid.UUID, now time.Time) int {
	tz := s.location()
	day := now

	streak := 0
	for streak < MaxStreakDays {
		dayStart, dayEnd := DayBounds(day, tz)

		studied, err := s.sessions.HasStudiedBetween(ctx, userID, dayStart, dayEnd)
		if err != nil {
			s.log.WarnContext(ctx, "streak calculation failed",
				slog.String("user_id", userID.String()),
				slog.String("day", dayStart.Format(time.DateOnly)),
				slog.String("error", err.Error()),
			)
			return 0
		}
		if !studied {
			break
		}

		streak++
		day = dayStart.Add(-dayEndPrecision)
	}

	return streak
}
