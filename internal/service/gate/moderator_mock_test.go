package gate

import (
	"context"
	"sync"

	"github.com/techconnect-india/backend/internal/domain"
)

var _ moderator = &moderatorMock{}

type moderatorMock struct {
	ModerateFunc func(ctx context.Context, text string) (domain.ModerationVerdict, error)

	calls struct {
		Moderate []struct {
			Ctx  context.Context
			Text string
		}
	}
	lockModerate sync.RWMutex
}

func (mock *moderatorMock) Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error) {
	if mock.ModerateFunc == nil {
		panic("moderatorMock.ModerateFunc: method is nil but moderator.Moderate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockModerate.Lock()
	mock.calls.Moderate = append(mock.calls.Moderate, callInfo)
	mock.lockModerate.Unlock()
	return mock.ModerateFunc(ctx, text)
}

func (mock *moderatorMock) ModerateCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockModerate.RLock()
	calls := mock.calls.Moderate
	mock.lockModerate.RUnlock()
	return calls
}
