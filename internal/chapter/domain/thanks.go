package domain

import "time"

// Thanks is a public acknowledgement between members, typically for closed
// business. Immutable once created.
type Thanks struct {
	ID           string
	FromMemberID string
	ToMemberID   string
	Message      string
	CreatedAt    time.Time

	// Denormalized party summaries, populated on reads.
	FromMember MemberSummary
	ToMember   MemberSummary
}
