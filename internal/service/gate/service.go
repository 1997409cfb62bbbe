// Package gate enforces the two send-time entitlement checks: the
// free-tier message quota and content moderation.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/domain"
)

// denyList is the fallback profanity filter used when the moderation
// endpoint is unavailable. Matching is case-insensitive substring, not
// word-boundary, so a legitimate word containing a banned token is also
// rejected. This mirrors the long-standing production behavior.
var denyList = []string{
	"fuck", "shit", "ass", "bitch", "dick", "pussy", "cunt", "whore",
	"slut", "bastard", "damn", "hell", "asshole", "motherfucker", "bullshit",
}

// moderator classifies message bodies. Implemented by the OpenAI
// moderation adapter.
type moderator interface {
	Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error)
}

// reportRepo persists audit records for rejected sends.
type reportRepo interface {
	Create(ctx context.Context, rep *domain.ToxicReport) error
}

// Service implements the entitlement gate.
type Service struct {
	log      *slog.Logger
	mod      moderator // nil disables the remote check, fallback only
	reports  reportRepo
	msgLimit int
}

// NewService creates a new gate service instance. mod may be nil when
// no moderation API key is configured; the local deny-list then handles
// all checks.
func NewService(logger *slog.Logger, mod moderator, reports reportRepo, freeMessageLimit int) *Service {
	return &Service{
		log:      logger.With("service", "gate"),
		mod:      mod,
		reports:  reports,
		msgLimit: freeMessageLimit,
	}
}

// Check runs the quota and moderation checks for a pending send.
// Order matters: quota first, so a silenced free user never generates
// moderation traffic. A flagged body is recorded as a ToxicReport and
// rejected with ErrModerationRejected; the message itself is never
// stored by this path.
func (s *Service) Check(ctx context.Context, sender *domain.User, body string) error {
	// Step 1: Quota check
	if !sender.CanSendMessage(s.msgLimit) {
		return fmt.Errorf("gate.Check: %w", domain.ErrQuotaExceeded)
	}

	// Step 2: Moderation check
	verdict := s.moderate(ctx, body)
	if !verdict.Flagged {
		return nil
	}

	// Step 3: Record the rejected attempt for audit
	report := &domain.ToxicReport{
		ID:         uuid.New(),
		Sender:     sender.Email,
		Body:       body,
		Categories: verdict.Categories,
		CreatedAt:  time.Now(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		// The rejection stands even if the audit write fails.
		s.log.ErrorContext(ctx, "toxic report write failed",
			slog.String("sender", sender.Email),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "message rejected by moderation",
		slog.String("sender", sender.Email),
		slog.Int("categories", len(verdict.Categories)))

	return fmt.Errorf("gate.Check: %w", domain.ErrModerationRejected)
}

// moderate runs the remote classifier, falling back to the local
// deny-list when the client is absent or fails.
func (s *Service) moderate(ctx context.Context, body string) domain.ModerationVerdict {
	if s.mod == nil {
		return s.fallbackScan(body)
	}

	verdict, err := s.mod.Moderate(ctx, body)
	if err != nil {
		s.log.WarnContext(ctx, "moderation endpoint failed, using local deny-list",
			slog.String("error", err.Error()))
		return s.fallbackScan(body)
	}
	return verdict
}

// fallbackScan applies the local deny-list.
func (s *Service) fallbackScan(body string) domain.ModerationVerdict {
	lower := strings.ToLower(body)
	for _, token := range denyList {
		if strings.Contains(lower, token) {
			return domain.ModerationVerdict{
				Flagged:    true,
				Categories: map[string]bool{"profanity": true},
			}
		}
	}
	return domain.ModerationVerdict{}
}
