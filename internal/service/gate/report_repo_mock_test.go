package gate

import (
	"context"
	"sync"

	"github.com/techconnect-india/backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc func(ctx context.Context, rep *domain.ToxicReport) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rep *domain.ToxicReport
		}
	}
	lockCreate sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, rep *domain.ToxicReport) error {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rep *domain.ToxicReport
	}{Ctx: ctx, Rep: rep}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rep)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rep *domain.ToxicReport
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
