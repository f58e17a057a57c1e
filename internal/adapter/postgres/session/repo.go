// Package session implements the StudySession repository using PostgreSQL.
// All queries use raw SQL; nullable counters are scanned into pointers and
// left for the domain to interpret.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, start_time, cards_studied, duration_minutes::float8`

const listInRangeSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
ORDER BY start_time, id`

const hasStudiedBetweenSQL = `
SELECT EXISTS (
    SELECT 1 FROM study_sessions
    WHERE user_id = $1
      AND start_time >= $2 AND start_time <= $3
      AND cards_studied > 0
)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListInRange returns the user's sessions that started within [start, end],
// both bounds inclusive, ordered by start time.
func (r *Repo) ListInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listInRangeSQL, userID, start, end)
	if err != nil {
		return nil, postgres.MapError(err, "sessions of user", userID)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, postgres.MapError(err, "sessions of user", userID)
	}

	return sessions, nil
}

// HasStudiedBetween reports whether the user has a session that started
// within [start, end] and studied at least one card.
func (r *Repo) HasStudiedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var studied bool
	if err := querier.QueryRow(ctx, hasStudiedBetweenSQL, userID, start, end).Scan(&studied); err != nil {
		return false, postgres.MapError(err, "sessions of user", userID)
	}

	return studied, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanSessions scans multiple session rows into a []domain.StudySession slice.
func scanSessions(rows pgx.Rows) ([]domain.StudySession, error) {
	sessions := []domain.StudySession{}
	for rows.Next() {
		var (
			id           uuid.UUID
			userID       uuid.UUID
			startTime    time.Time
			cardsStudied *int32
			duration     *float64
		)

		if err := rows.Scan(&id, &userID, &startTime, &cardsStudied, &duration); err != nil {
			return nil, fmt.Errorf("scan study_session: %w", err)
		}

		session := domain.StudySession{
			ID:              id,
			UserID:          userID,
			StartTime:       startTime,
			DurationMinutes: duration,
		}
		if cardsStudied != nil {
			n := int(*cardsStudied)
			session.CardsStudied = &n
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
