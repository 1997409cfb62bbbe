package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single directed chat message. Messages are immutable once
// stored and are never deleted.
//
// Seq is a storage-assigned monotonic sequence used as the stable
// tie-break when two messages in a conversation share a timestamp.
type Message struct {
	ID        uuid.UUID
	Seq       int64
	Sender    string
	Receiver  string
	Body      string
	CreatedAt time.Time
}

// ConversationKey returns the unordered pair of participant emails in a
// canonical (lexicographic) order, so that (a,b) and (b,a) map to the
// same conversation.
func ConversationKey(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// ModerationVerdict is the outcome of a content moderation check.
// Categories holds only the categories that fired.
type ModerationVerdict struct {
	Flagged    bool
	Categories map[string]bool
}

// ToxicReport is the audit record created whenever a send is rejected
// for content policy reasons. It never blocks retrieval; it only records
// the rejected attempt.
type ToxicReport struct {
	ID         uuid.UUID
	Sender     string
	Body       string
	Categories map[string]bool
	CreatedAt  time.Time
}
