// Package chat implements the two-party message thread: sending under
// the entitlement gate and retrieving ordered conversations.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/config"
	"github.com/techconnect-india/backend/internal/domain"
)

// userRepo defines the user repository interface needed by chat service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	IncrementMessageCount(ctx context.Context, id uuid.UUID) (int, error)
}

// messageRepo defines the message repository interface needed by chat service.
type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListConversation(ctx context.Context, a, b string, limit int) ([]domain.Message, error)
	CountBySender(ctx context.Context, sender string) (int64, error)
}

// entitlementGate runs the send-time quota and moderation checks.
type entitlementGate interface {
	Check(ctx context.Context, sender *domain.User, body string) error
}

// Service implements chat operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	messages messageRepo
	gate     entitlementGate
	cfg      config.ChatConfig
}

// NewService creates a new chat service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	messages messageRepo,
	gate entitlementGate,
	cfg config.ChatConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "chat"),
		users:    users,
		messages: messages,
		gate:     gate,
		cfg:      cfg,
	}
}
