package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	GetOwnedFunc          func(ctx context.Context, userID uuid.UUID, deckID uuid.UUID) (*domain.Deck, error)
	ListSmallFunc         func(ctx context.Context, userID uuid.UUID, maxCards int) ([]domain.DeckCardCount, error)
	ListAbandonedFunc     func(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Deck, error)
	ListLowRatingFunc     func(ctx context.Context, userID uuid.UUID, since time.Time, threshold float64) ([]domain.DeckRating, error)
	RefreshTotalCardsFunc func(ctx context.Context, deckID uuid.UUID) (int, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetOwned []struct {
			Ctx    context.Context
			UserID uuid.UUID
			DeckID uuid.UUID
		}
		ListSmall []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			MaxCards int
		}
		ListAbandoned []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Cutoff time.Time
		}
		ListLowRating []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Since     time.Time
			Threshold float64
		}
		RefreshTotalCards []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockListByUser        sync.RWMutex
	lockGetOwned          sync.RWMutex
	lockListSmall         sync.RWMutex
	lockListAbandoned     sync.RWMutex
	lockListLowRating     sync.RWMutex
	lockRefreshTotalCards sync.RWMutex
}

func (mock *deckRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	if mock.ListByUserFunc == nil {
		panic("deckRepoMock.ListByUserFunc: method is nil but deckRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *deckRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *deckRepoMock) GetOwned(ctx context.Context, userID uuid.UUID, deckID uuid.UUID) (*domain.Deck, error) {
	if mock.GetOwnedFunc == nil {
		panic("deckRepoMock.GetOwnedFunc: method is nil but deckRepo.GetOwned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		DeckID uuid.UUID
	}{Ctx: ctx, UserID: userID, DeckID: deckID}
	mock.lockGetOwned.Lock()
	mock.calls.GetOwned = append(mock.calls.GetOwned, callInfo)
	mock.lockGetOwned.Unlock()
	return mock.GetOwnedFunc(ctx, userID, deckID)
}

func (mock *deckRepoMock) GetOwnedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	DeckID uuid.UUID
} {
	mock.lockGetOwned.RLock()
	calls := mock.calls.GetOwned
	mock.lockGetOwned.RUnlock()
	return calls
}

func (mock *deckRepoMock) ListSmall(ctx context.Context, userID uuid.UUID, maxCards int) ([]domain.DeckCardCount, error) {
	if mock.ListSmallFunc == nil {
		panic("deckRepoMock.ListSmallFunc: method is nil but deckRepo.ListSmall was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		MaxCards int
	}{Ctx: ctx, UserID: userID, MaxCards: maxCards}
	mock.lockListSmall.Lock()
	mock.calls.ListSmall = append(mock.calls.ListSmall, callInfo)
	mock.lockListSmall.Unlock()
	return mock.ListSmallFunc(ctx, userID, maxCards)
}

func (mock *deckRepoMock) ListSmallCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	MaxCards int
} {
	mock.lockListSmall.RLock()
	calls := mock.calls.ListSmall
	mock.lockListSmall.RUnlock()
	return calls
}

func (mock *deckRepoMock) ListAbandoned(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Deck, error) {
	if mock.ListAbandonedFunc == nil {
		panic("deckRepoMock.ListAbandonedFunc: method is nil but deckRepo.ListAbandoned was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Cutoff time.Time
	}{Ctx: ctx, UserID: userID, Cutoff: cutoff}
	mock.lockListAbandoned.Lock()
	mock.calls.ListAbandoned = append(mock.calls.ListAbandoned, callInfo)
	mock.lockListAbandoned.Unlock()
	return mock.ListAbandonedFunc(ctx, userID, cutoff)
}

func (mock *deckRepoMock) ListAbandonedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Cutoff time.Time
} {
	mock.lockListAbandoned.RLock()
	calls := mock.calls.ListAbandoned
	mock.lockListAbandoned.RUnlock()
	return calls
}

func (mock *deckRepoMock) ListLowRating(ctx context.Context, userID uuid.UUID, since time.Time, threshold float64) ([]domain.DeckRating, error) {
	if mock.ListLowRatingFunc == nil {
		panic("deckRepoMock.ListLowRatingFunc: method is nil but deckRepo.ListLowRating was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Since     time.Time
		Threshold float64
	}{Ctx: ctx, UserID: userID, Since: since, Threshold: threshold}
	mock.lockListLowRating.Lock()
	mock.calls.ListLowRating = append(mock.calls.ListLowRating, callInfo)
	mock.lockListLowRating.Unlock()
	return mock.ListLowRatingFunc(ctx, userID, since, threshold)
}

func (mock *deckRepoMock) ListLowRatingCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Since     time.Time
	Threshold float64
} {
	mock.lockListLowRating.RLock()
	calls := mock.calls.ListLowRating
	mock.lockListLowRating.RUnlock()
	return calls
}

func (mock *deckRepoMock) RefreshTotalCards(ctx context.Context, deckID uuid.UUID) (int, error) {
	if mock.RefreshTotalCardsFunc == nil {
		panic("deckRepoMock.RefreshTotalCardsFunc: method is nil but deckRepo.RefreshTotalCards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockRefreshTotalCards.Lock()
	mock.calls.RefreshTotalCards = append(mock.calls.RefreshTotalCards, callInfo)
	mock.lockRefreshTotalCards.Unlock()
	return mock.RefreshTotalCardsFunc(ctx, deckID)
}

func (mock *deckRepoMock) RefreshTotalCardsCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockRefreshTotalCards.RLock()
	calls := mock.calls.RefreshTotalCards
	mock.lockRefreshTotalCards.RUnlock()
	return calls
}
