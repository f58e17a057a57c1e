package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var sessionCols = []string{"id", "user_id", "start_time", "cards_studied", "duration_minutes"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRepo_ListInRange_SQL(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	userID := uuid.New()
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Microsecond)

	cards := int32(12)
	minutes := 7.5
	mock.ExpectQuery(`FROM study_sessions\s+WHERE user_id = \$1 AND start_time >= \$2 AND start_time <= \$3`).
		WithArgs(userID, start, end).
		WillReturnRows(pgxmock.NewRows(sessionCols).
			AddRow(uuid.New(), userID, start.Add(time.Hour), &cards, &minutes).
			AddRow(uuid.New(), userID, start.Add(2*time.Hour), (*int32)(nil), (*float64)(nil)))

	got, err := New(mock).ListInRange(context.Background(), userID, start, end)
	if err != nil {
		t.Fatalf("ListInRange() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListInRange() len = %d, want 2", len(got))
	}
	if got[0].CardsStudiedOrZero() != 12 || got[0].DurationOrZero() != 7.5 {
		t.Errorf("first session = %+v", got[0])
	}
	if got[1].CardsStudied != nil || got[1].DurationMinutes != nil {
		t.Errorf("second session should keep NULLs, got %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_ListInRange_Error(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`FROM study_sessions`).WillReturnError(errors.New("boom"))

	_, err := New(mock).ListInRange(context.Background(), uuid.New(), time.Now(), time.Now())
	if !errors.Is(err, domain.ErrDataAccess) {
		t.Fatalf("ListInRange() error = %v, want ErrDataAccess", err)
	}
}

func TestRepo_HasStudiedBetween_SQL(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	start := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Microsecond)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		want    bool
		wantErr error
	}{
		{
			name: "studied",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT EXISTS \(.*cards_studied > 0`).
					WithArgs(userID, start, end).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			want: true,
		},
		{
			name: "not studied",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(userID, start, end).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			name: "deadline",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(userID, start, end).
					WillReturnError(context.DeadlineExceeded)
			},
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			tt.setup(mock)

			got, err := New(mock).HasStudiedBetween(context.Background(), userID, start, end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("HasStudiedBetween() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("HasStudiedBetween() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasStudiedBetween() = %v, want %v", got, tt.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}
