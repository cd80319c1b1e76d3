package domain

import "time"

// Referral statuses. Transitions between them are deliberately
// unconstrained: either party may set any status at any time.
const (
	ReferralPending    = "pending"
	ReferralInProgress = "in_progress"
	ReferralWon        = "won"
	ReferralLost       = "lost"
)

// ValidReferralStatus reports whether s is one of the four known statuses.
func ValidReferralStatus(s string) bool {
	switch s {
	case ReferralPending, ReferralInProgress, ReferralWon, ReferralLost:
		return true
	}
	return false
}

// Referral is a business introduction one member makes to another. Only the
// sender or the recipient may update its status.
type Referral struct {
	ID           string
	FromMemberID string
	ToMemberID   string
	Title        string
	Description  string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Denormalized party summaries, populated on reads.
	FromMember MemberSummary
	ToMember   MemberSummary
}

// IsParty reports whether memberID is the sender or the recipient.
func (r Referral) IsParty(memberID string) bool {
	return r.FromMemberID == memberID || r.ToMemberID == memberID
}
