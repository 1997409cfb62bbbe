package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// GetByEmail returns the directory record for the given email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "email", Message: "required"},
		}}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.GetByEmail: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the authenticated user's city and skills.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Normalize and apply the patch
	patch := domain.UserPatch{Skills: input.Skills}
	if input.City != nil {
		city := strings.TrimSpace(*input.City)
		patch.City = &city
	}

	user, err := s.users.Update(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	// Step 4: Log the update
	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
