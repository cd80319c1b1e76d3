package domain

import "time"

// Intention statuses. pending is the only non-terminal state; a decision
// moves it to approved or rejected.
const (
	IntentionPending  = "pending"
	IntentionApproved = "approved"
	IntentionRejected = "rejected"
)

// Intention is a prospective member's request to join, submitted publicly
// and decided by an admin. Email is unique case-insensitively.
type Intention struct {
	ID        string
	FullName  string
	Email     string
	Company   string // optional
	Phone     string // optional
	Notes     string // optional
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidDecision reports whether s is an allowed admin decision.
func ValidDecision(s string) bool {
	return s == IntentionApproved || s == IntentionRejected
}
