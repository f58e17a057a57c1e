package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ cardSource = &cardSourceMock{}

type cardSourceMock struct {
	ListByDeckFunc func(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)

	calls struct {
		ListByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockListByDeck sync.RWMutex
}

func (mock *cardSourceMock) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardSourceMock.ListByDeckFunc: method is nil but cardSource.ListByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, deckID)
}

func (mock *cardSourceMock) ListByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}
