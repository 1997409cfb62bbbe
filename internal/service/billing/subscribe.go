package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/pkg/ctxutil"
)

// Checkout is what the caller needs to complete payment.
type Checkout struct {
	SubscriptionID string
	PaymentURL     string
	Plan           domain.Plan
}

// Subscribe creates a provider subscription for the authenticated user
// and records the pending subscription id and plan on the directory
// record. The user stays on the free tier until Verify confirms the
// payment went through.
func (s *Service) Subscribe(ctx context.Context, planID domain.PlanID) (*Checkout, error) {
	// Step 1: Resolve the plan
	plan, err := domain.PlanByID(planID)
	if err != nil {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "plan", Message: "unknown plan"},
		}}
	}

	// Step 2: Load the user
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("billing.Subscribe get user: %w", err)
	}

	if user.IsPaid() {
		return nil, fmt.Errorf("billing.Subscribe: already subscribed: %w", domain.ErrConflict)
	}

	// Step 3: Create the provider subscription
	sub, err := s.gateway.CreateSubscription(ctx, user.Email, plan)
	if err != nil {
		s.log.ErrorContext(ctx, "subscription creation failed",
			slog.String("user_id", user.ID.String()),
			slog.String("plan", plan.ID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("billing.Subscribe: %w", domain.ErrServiceUnavailable)
	}

	// Step 4: Record the pending subscription on the user
	if _, err := s.users.Update(ctx, user.ID, domain.UserPatch{
		SubscriptionID:   &sub.ID,
		SubscriptionPlan: &plan.ID,
	}); err != nil {
		return nil, fmt.Errorf("billing.Subscribe store subscription: %w", err)
	}

	s.log.InfoContext(ctx, "subscription created",
		slog.String("user_id", user.ID.String()),
		slog.String("subscription_id", sub.ID),
		slog.String("plan", plan.ID.String()))

	return &Checkout{
		SubscriptionID: sub.ID,
		PaymentURL:     sub.ShortURL,
		Plan:           plan,
	}, nil
}

// Verify fetches the provider-side subscription status. When the
// provider reports the subscription active, the user is promoted to the
// paid tier. Any other status leaves the user unchanged.
func (s *Service) Verify(ctx context.Context) (*domain.User, error) {
	// Step 1: Load the user
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("billing.Verify get user: %w", err)
	}

	if user.SubscriptionID == nil {
		return nil, fmt.Errorf("billing.Verify: no pending subscription: %w", domain.ErrNotFound)
	}
	if user.IsPaid() {
		return user, nil
	}

	// Step 2: Fetch provider status
	sub, err := s.gateway.FetchSubscription(ctx, *user.SubscriptionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("billing.Verify: %w", err)
		}
		s.log.ErrorContext(ctx, "subscription fetch failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("billing.Verify: %w", domain.ErrServiceUnavailable)
	}

	// Step 3: Promote on active status
	if sub.Status != "active" {
		s.log.InfoContext(ctx, "subscription not yet active",
			slog.String("user_id", user.ID.String()),
			slog.String("status", sub.Status))
		return user, nil
	}

	paid := domain.SubscriptionPaid
	updated, err := s.users.Update(ctx, user.ID, domain.UserPatch{Subscription: &paid})
	if err != nil {
		return nil, fmt.Errorf("billing.Verify promote user: %w", err)
	}

	s.log.InfoContext(ctx, "subscription activated",
		slog.String("user_id", user.ID.String()))

	return updated, nil
}
