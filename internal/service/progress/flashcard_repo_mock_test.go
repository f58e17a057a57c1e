package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	ListDueFunc func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.DueFlashcard, int, error)
	CreateFunc  func(ctx context.Context, deckID uuid.UUID, front string, back string) (*domain.Flashcard, error)

	calls struct {
		ListDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
			Limit  int
		}
		Create []struct {
			Ctx    context.Context
			DeckID uuid.UUID
			Front  string
			Back   string
		}
	}
	lockListDue sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *flashcardRepoMock) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.DueFlashcard, int, error) {
	if mock.ListDueFunc == nil {
		panic("flashcardRepoMock.ListDueFunc: method is nil but flashcardRepo.ListDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}{Ctx: ctx, UserID: userID, Now: now, Limit: limit}
	mock.lockListDue.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, callInfo)
	mock.lockListDue.Unlock()
	return mock.ListDueFunc(ctx, userID, now, limit)
}

func (mock *flashcardRepoMock) ListDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
	Limit  int
} {
	mock.lockListDue.RLock()
	calls := mock.calls.ListDue
	mock.lockListDue.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) Create(ctx context.Context, deckID uuid.UUID, front string, back string) (*domain.Flashcard, error) {
	if mock.CreateFunc == nil {
		panic("flashcardRepoMock.CreateFunc: method is nil but flashcardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
		Front  string
		Back   string
	}{Ctx: ctx, DeckID: deckID, Front: front, Back: back}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, deckID, front, back)
}

func (mock *flashcardRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
	Front  string
	Back   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
