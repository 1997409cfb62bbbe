package chat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc            func(ctx context.Context, email string) (*domain.User, error)
	IncrementMessageCountFunc func(ctx context.Context, id uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		IncrementMessageCount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID               sync.RWMutex
	lockGetByEmail            sync.RWMutex
	lockIncrementMessageCount sync.RWMutex
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

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) IncrementMessageCount(ctx context.Context, id uuid.UUID) (int, error) {
	if mock.IncrementMessageCountFunc == nil {
		panic("userRepoMock.IncrementMessageCountFunc: method is nil but userRepo.IncrementMessageCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementMessageCount.Lock()
	mock.calls.IncrementMessageCount = append(mock.calls.IncrementMessageCount, callInfo)
	mock.lockIncrementMessageCount.Unlock()
	return mock.IncrementMessageCountFunc(ctx, id)
}

func (mock *userRepoMock) IncrementMessageCountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementMessageCount.RLock()
	calls := mock.calls.IncrementMessageCount
	mock.lockIncrementMessageCount.RUnlock()
	return calls
}
