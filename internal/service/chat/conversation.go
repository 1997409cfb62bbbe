package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/pkg/ctxutil"
)

// GetConversation returns the merged two-direction thread between the
// authenticated user and the peer, oldest first. The same thread comes
// back regardless of which side asks. Threads longer than the configured
// cap are trimmed from the oldest end, so the newest messages always
// survive.
func (s *Service) GetConversation(ctx context.Context, peerEmail string) ([]domain.Message, error) {
	peerEmail = strings.ToLower(strings.TrimSpace(peerEmail))
	if peerEmail == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "peer", Message: "required"},
		}}
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.GetConversation get user: %w", err)
	}

	peer, err := s.users.GetByEmail(ctx, peerEmail)
	if err != nil {
		return nil, fmt.Errorf("chat.GetConversation get peer: %w", err)
	}

	messages, err := s.messages.ListConversation(ctx, user.Email, peer.Email, s.cfg.ConversationLimit)
	if err != nil {
		return nil, fmt.Errorf("chat.GetConversation list: %w", err)
	}

	return messages, nil
}

// CountSent returns the total number of messages the authenticated user
// has ever sent, derived from the message store rather than the quota
// counter.
func (s *Service) CountSent(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("chat.CountSent get user: %w", err)
	}

	count, err := s.messages.CountBySender(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("chat.CountSent: %w", err)
	}
	return count, nil
}
