// Package billing implements the subscription plan catalog, checkout,
// and payment verification against the payment provider.
package billing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/adapter/payment"
	"github.com/techconnect-india/backend/internal/domain"
)

// userRepo defines the user repository interface needed by billing service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
}

// paymentGateway defines the payment provider interface. Implemented by
// the Razorpay HTTP adapter.
type paymentGateway interface {
	CreateSubscription(ctx context.Context, email string, plan domain.Plan) (*payment.Subscription, error)
	FetchSubscription(ctx context.Context, subscriptionID string) (*payment.Subscription, error)
}

// Service implements billing operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	gateway paymentGateway
}

// NewService creates a new billing service instance.
func NewService(logger *slog.Logger, users userRepo, gateway paymentGateway) *Service {
	return &Service{
		log:     logger.With("service", "billing"),
		users:   users,
		gateway: gateway,
	}
}

// Plans returns the subscription plan catalog.
func (s *Service) Plans() []domain.Plan {
	return domain.Plans()
}
