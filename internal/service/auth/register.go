package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/internal/verifier"
)

// Register creates a new user with email + password authentication.
// The registrant must pass background verification: a resume text scan
// or a manual skill list. No profile is created when verification
// fails; the operation returns ErrForbidden.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	input.City = strings.TrimSpace(input.City)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Background verification. Resume text wins when both are
	// supplied.
	var check verifier.Result
	if input.ResumeText != "" {
		check = verifier.ScanResume(input.ResumeText)
	} else {
		check = verifier.CheckSkills(input.Skills)
	}
	if !check.Verified {
		s.log.InfoContext(ctx, "registration rejected by verification",
			slog.String("email", input.Email),
			slog.Int("skills_found", len(check.Skills)))
		return nil, fmt.Errorf("auth.Register: background verification failed: %w", domain.ErrForbidden)
	}

	// Step 3: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 4: Create user and first session in a transaction.
	// Email uniqueness is enforced by the DB constraint.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Name:         input.Name,
			City:         input.City,
			Skills:       check.Skills,
			PasswordHash: string(hash),
			Subscription: domain.SubscriptionFree,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()),
		slog.Int("skills", len(check.Skills)))

	return result, nil
}
