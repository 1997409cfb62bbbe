// Package match selects a counterpart professional from the directory,
// either unconstrained or restricted to a city.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by match service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAll(ctx context.Context, exclude string) ([]domain.User, error)
	ListByCity(ctx context.Context, city, exclude string) ([]domain.User, error)
}

// Service implements counterpart selection.
type Service struct {
	log   *slog.Logger
	users userRepo
	// intN draws a uniform integer in [0, n). Overridable in tests.
	intN func(n int) int
}

// NewService creates a new match service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "match"),
		users: users,
		intN:  rand.IntN,
	}
}

// FindRandom selects a uniformly random counterpart for the
// authenticated user. Every candidate is equally likely; there is no
// repeat-avoidance, so the same counterpart can come up again.
// Returns ErrNoMatch when nobody else is registered.
func (s *Service) FindRandom(ctx context.Context) (*domain.User, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := s.users.ListAll(ctx, requester.Email)
	if err != nil {
		return nil, fmt.Errorf("match.FindRandom list candidates: %w", err)
	}

	return s.draw(ctx, requester, candidates)
}

// FindByCity selects a uniformly random counterpart from the given
// city. City matching is a paid feature; free users get ErrForbidden.
// Returns ErrNoMatch when the city has no other registered user.
func (s *Service) FindByCity(ctx context.Context, city string) (*domain.User, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "city", Message: "required"},
		}}
	}

	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	if !requester.IsPaid() {
		return nil, fmt.Errorf("match.FindByCity: city matching requires a paid subscription: %w", domain.ErrForbidden)
	}

	candidates, err := s.users.ListByCity(ctx, city, requester.Email)
	if err != nil {
		return nil, fmt.Errorf("match.FindByCity list candidates: %w", err)
	}

	return s.draw(ctx, requester, candidates)
}

// requester loads the authenticated user's directory record.
func (s *Service) requester(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	requester, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("match: get requester: %w", err)
	}
	return requester, nil
}

// draw picks one candidate uniformly. The repository already excludes
// the requester's email; the extra check here guards against a stale
// candidate list.
func (s *Service) draw(ctx context.Context, requester *domain.User, candidates []domain.User) (*domain.User, error) {
	filtered := candidates[:0]
	for _, c := range candidates {
		if c.Email != requester.Email {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == 0 {
		return nil, domain.ErrNoMatch
	}

	pick := filtered[s.intN(len(filtered))]

	s.log.InfoContext(ctx, "match found",
		slog.String("requester", requester.Email),
		slog.String("counterpart", pick.Email),
		slog.Int("candidates", len(filtered)))

	return &pick, nil
}
