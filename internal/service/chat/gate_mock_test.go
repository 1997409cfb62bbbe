package chat

import (
	"context"
	"sync"

	"github.com/techconnect-india/backend/internal/domain"
)

var _ entitlementGate = &entitlementGateMock{}

type entitlementGateMock struct {
	CheckFunc func(ctx context.Context, sender *domain.User, body string) error

	calls struct {
		Check []struct {
			Ctx    context.Context
			Sender *domain.User
			Body   string
		}
	}
	lockCheck sync.RWMutex
}

func (mock *entitlementGateMock) Check(ctx context.Context, sender *domain.User, body string) error {
	if mock.CheckFunc == nil {
		panic("entitlementGateMock.CheckFunc: method is nil but entitlementGate.Check was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Sender *domain.User
		Body   string
	}{Ctx: ctx, Sender: sender, Body: body}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, sender, body)
}

func (mock *entitlementGateMock) CheckCalls() []struct {
	Ctx    context.Context
	Sender *domain.User
	Body   string
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}
