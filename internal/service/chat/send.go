package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/pkg/ctxutil"
)

// Send stores a message from the authenticated user to the receiver
// after the entitlement gate clears it. The quota counter increment is
// deliberately non-atomic with the message write: a stored message with
// a lagging counter is acceptable, the reverse is not.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Message, error) {
	// Normalize input before validation.
	input.ReceiverEmail = strings.ToLower(strings.TrimSpace(input.ReceiverEmail))
	input.Body = strings.TrimSpace(input.Body)
	input.maxBodyLength = s.cfg.MaxMessageLength

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load sender
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	sender, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.Send get sender: %w", err)
	}

	if sender.Email == input.ReceiverEmail {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "receiver", Message: "cannot message yourself"},
		}}
	}

	// Step 3: Receiver must exist in the directory
	receiver, err := s.users.GetByEmail(ctx, input.ReceiverEmail)
	if err != nil {
		return nil, fmt.Errorf("chat.Send get receiver: %w", err)
	}

	// Step 4: Entitlement gate (quota, then moderation)
	if err := s.gate.Check(ctx, sender, input.Body); err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) || errors.Is(err, domain.ErrModerationRejected) {
			return nil, err
		}
		return nil, fmt.Errorf("chat.Send gate: %w", err)
	}

	// Step 5: Persist the message
	msg, err := s.messages.Create(ctx, &domain.Message{
		ID:        uuid.New(),
		Sender:    sender.Email,
		Receiver:  receiver.Email,
		Body:      input.Body,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("chat.Send store message: %w", err)
	}

	// Step 6: Bump the quota counter for free senders. The message is
	// already stored; a failed increment is logged, not surfaced.
	if !sender.IsPaid() {
		if _, err := s.users.IncrementMessageCount(ctx, sender.ID); err != nil {
			s.log.ErrorContext(ctx, "message count increment failed",
				slog.String("user_id", sender.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "message sent",
		slog.String("sender", sender.Email),
		slog.String("receiver", receiver.Email))

	return msg, nil
}
