package domain

import (
	"time"

	"github.com/google/uuid"
)

// FreeMessageLimit is the number of messages a free-tier user may send
// before the subscription upsell kicks in.
const FreeMessageLimit = 50

// SubscriptionStatus is the user's billing tier.
type SubscriptionStatus string

const (
	SubscriptionFree SubscriptionStatus = "free"
	SubscriptionPaid SubscriptionStatus = "paid"
)

func (s SubscriptionStatus) String() string { return string(s) }

// Valid reports whether the status is one of the known tiers.
func (s SubscriptionStatus) Valid() bool {
	return s == SubscriptionFree || s == SubscriptionPaid
}

// User is a verified IT professional's directory record.
// MessageCount tracks sends made while on the free tier; it is ignored
// once the user is paid.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	City             string
	Skills           []string
	PasswordHash     string
	Subscription     SubscriptionStatus
	SubscriptionID   *string
	SubscriptionPlan *PlanID
	MessageCount     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPaid reports whether the user has an active paid subscription.
func (u *User) IsPaid() bool { return u.Subscription == SubscriptionPaid }

// CanSendMessage reports whether a send is permitted under the free-tier
// quota: paid users are unlimited, free users are capped at limit.
func (u *User) CanSendMessage(limit int) bool {
	return u.IsPaid() || u.MessageCount < limit
}

// UserPatch lists the directory fields that may be updated after
// creation. Nil fields are left untouched.
type UserPatch struct {
	City             *string
	Skills           *[]string
	Subscription     *SubscriptionStatus
	SubscriptionID   *string
	SubscriptionPlan *PlanID
	MessageCount     *int
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.City == nil && p.Skills == nil && p.Subscription == nil &&
		p.SubscriptionID == nil && p.SubscriptionPlan == nil && p.MessageCount == nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
