package match

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAllFunc    func(ctx context.Context, exclude string) ([]domain.User, error)
	ListByCityFunc func(ctx context.Context, city, exclude string) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListAll []struct {
			Ctx     context.Context
			Exclude string
		}
		ListByCity []struct {
			Ctx     context.Context
			City    string
			Exclude string
		}
	}
	lockGetByID    sync.RWMutex
	lockListAll    sync.RWMutex
	lockListByCity sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) ListAll(ctx context.Context, exclude string) ([]domain.User, error) {
	if mock.ListAllFunc == nil {
		panic("userRepoMock.ListAllFunc: method is nil but userRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Exclude string
	}{Ctx: ctx, Exclude: exclude}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, exclude)
}

func (mock *userRepoMock) ListAllCalls() []struct {
	Ctx     context.Context
	Exclude string
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *userRepoMock) ListByCity(ctx context.Context, city, exclude string) ([]domain.User, error) {
	if mock.ListByCityFunc == nil {
		panic("userRepoMock.ListByCityFunc: method is nil but userRepo.ListByCity was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		City    string
		Exclude string
	}{Ctx: ctx, City: city, Exclude: exclude}
	mock.lockListByCity.Lock()
	mock.calls.ListByCity = append(mock.calls.ListByCity, callInfo)
	mock.lockListByCity.Unlock()
	return mock.ListByCityFunc(ctx, city, exclude)
}

func (mock *userRepoMock) ListByCityCalls() []struct {
	Ctx     context.Context
	City    string
	Exclude string
} {
	mock.lockListByCity.RLock()
	calls := mock.calls.ListByCity
	mock.lockListByCity.RUnlock()
	return calls
}
