package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	ListSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.CardReview, error)

	calls struct {
		ListSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockListSince sync.RWMutex
}

func (mock *reviewRepoMock) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.CardReview, error) {
	if mock.ListSinceFunc == nil {
		panic("reviewRepoMock.ListSinceFunc: method is nil but reviewRepo.ListSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, userID, since)
}

func (mock *reviewRepoMock) ListSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockListSince.RLock()
	calls := mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}
