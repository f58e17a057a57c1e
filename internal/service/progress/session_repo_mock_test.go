package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	ListInRangeFunc       func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) ([]domain.StudySession, error)
	HasStudiedBetweenFunc func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error)

	calls struct {
		ListInRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
		HasStudiedBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
	}
	lockListInRange       sync.RWMutex
	lockHasStudiedBetween sync.RWMutex
}

func (mock *sessionRepoMock) ListInRange(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) ([]domain.StudySession, error) {
	if mock.ListInRangeFunc == nil {
		panic("sessionRepoMock.ListInRangeFunc: method is nil but sessionRepo.ListInRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{Ctx: ctx, UserID: userID, Start: start, End: end}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, callInfo)
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, userID, start, end)
}

func (mock *sessionRepoMock) ListInRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *sessionRepoMock) HasStudiedBetween(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error) {
	if mock.HasStudiedBetweenFunc == nil {
		panic("sessionRepoMock.HasStudiedBetweenFunc: method is nil but sessionRepo.HasStudiedBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{Ctx: ctx, UserID: userID, Start: start, End: end}
	mock.lockHasStudiedBetween.Lock()
	mock.calls.HasStudiedBetween = append(mock.calls.HasStudiedBetween, callInfo)
	mock.lockHasStudiedBetween.Unlock()
	return mock.HasStudiedBetweenFunc(ctx, userID, start, end)
}

func (mock *sessionRepoMock) HasStudiedBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lockHasStudiedBetween.RLock()
	calls := mock.calls.HasStudiedBetween
	mock.lockHasStudiedBetween.RUnlock()
	return calls
}
