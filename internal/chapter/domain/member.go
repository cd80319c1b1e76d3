package domain

import "time"

// Member statuses.
const (
	MemberActive   = "active"
	MemberInactive = "inactive"
)

// Member is an admitted account. Created only through invite redemption or
// bootstrap; identity fields are immutable afterwards.
type Member struct {
	ID           string
	FullName     string
	Email        string
	Company      string // optional
	Phone        string // optional
	PasswordHash string // argon2id encoded
	Admin        bool
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the member may authenticate and act.
func (m Member) IsActive() bool { return m.Status == MemberActive }

// MemberSummary is the public projection of a member used in directory
// listings and referral payloads.
type MemberSummary struct {
	ID       string
	FullName string
	Company  string
}

// Summary returns the public projection of m.
func (m Member) Summary() MemberSummary {
	return MemberSummary{ID: m.ID, FullName: m.FullName, Company: m.Company}
}
