package chat

import (
	"context"
	"sync"

	"github.com/techconnect-india/backend/internal/domain"
)

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc           func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListConversationFunc func(ctx context.Context, a, b string, limit int) ([]domain.Message, error)
	CountBySenderFunc    func(ctx context.Context, sender string) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Message
		}
		ListConversation []struct {
			Ctx   context.Context
			A     string
			B     string
			Limit int
		}
		CountBySender []struct {
			Ctx    context.Context
			Sender string
		}
	}
	lockCreate           sync.RWMutex
	lockListConversation sync.RWMutex
	lockCountBySender    sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Message
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Message
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListConversation(ctx context.Context, a, b string, limit int) ([]domain.Message, error) {
	if mock.ListConversationFunc == nil {
		panic("messageRepoMock.ListConversationFunc: method is nil but messageRepo.ListConversation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		A     string
		B     string
		Limit int
	}{Ctx: ctx, A: a, B: b, Limit: limit}
	mock.lockListConversation.Lock()
	mock.calls.ListConversation = append(mock.calls.ListConversation, callInfo)
	mock.lockListConversation.Unlock()
	return mock.ListConversationFunc(ctx, a, b, limit)
}

func (mock *messageRepoMock) ListConversationCalls() []struct {
	Ctx   context.Context
	A     string
	B     string
	Limit int
} {
	mock.lockListConversation.RLock()
	calls := mock.calls.ListConversation
	mock.lockListConversation.RUnlock()
	return calls
}

func (mock *messageRepoMock) CountBySender(ctx context.Context, sender string) (int64, error) {
	if mock.CountBySenderFunc == nil {
		panic("messageRepoMock.CountBySenderFunc: method is nil but messageRepo.CountBySender was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Sender string
	}{Ctx: ctx, Sender: sender}
	mock.lockCountBySender.Lock()
	mock.calls.CountBySender = append(mock.calls.CountBySender, callInfo)
	mock.lockCountBySender.Unlock()
	return mock.CountBySenderFunc(ctx, sender)
}

func (mock *messageRepoMock) CountBySenderCalls() []struct {
	Ctx    context.Context
	Sender string
} {
	mock.lockCountBySender.RLock()
	calls := mock.calls.CountBySender
	mock.lockCountBySender.RUnlock()
	return calls
}
