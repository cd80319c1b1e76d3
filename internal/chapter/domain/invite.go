package domain

import "time"

// InviteTokenTTL is how long an invite stays redeemable after approval.
const InviteTokenTTL = 7 * 24 * time.Hour

// InviteToken is the single-use signup credential minted when an intention
// is approved. Exactly one row exists per intention; re-approving replaces
// token hash and expiry, which invalidates the previously issued token.
// Only the SHA-256 fingerprint of the opaque token is stored.
type InviteToken struct {
	ID          string
	IntentionID string
	TokenHash   string
	ExpiresAt   time.Time
	Used        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Redeemable reports whether the token can still complete a signup. The
// intention status check lives in the service because the store returns the
// intention alongside the token.
func (t InviteToken) Redeemable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
