package chaptersdk

import "time"

// IntentionRequest is the public membership intake payload.
type IntentionRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Intention is an intake record as seen by admins (and, reduced, by the
// submitting user in the 201 response).
type Intention struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DecisionRequest sets an intention's status to approved or rejected.
type DecisionRequest struct {
	Status string `json:"status"`
}

// DecisionResponse is the admin's view after a decision. InviteToken and
// InviteExpiresAt are present only when the decision minted a fresh invite;
// the raw token is never retrievable again.
type DecisionResponse struct {
	Intention       Intention  `json:"intention"`
	InviteToken     string     `json:"inviteToken,omitempty"`
	InviteExpiresAt *time.Time `json:"inviteExpiresAt,omitempty"`
}

// SignupPrefill is what the signup form shows before submission.
type SignupPrefill struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// SignupRequest completes a signup against an invite token. FullName,
// Company and Phone may be left blank to keep the intention's values.
type SignupRequest struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Member is an admitted account, password hash excluded.
type Member struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Admin     bool      `json:"admin"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberSummary is the public directory projection of a member.
type MemberSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Company  string `json:"company,omitempty"`
}

// LoginRequest authenticates a member.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the member and the session token. Browsers get the
// same token as an httpOnly cookie; API clients use the Token field.
type LoginResponse struct {
	Member Member `json:"member"`
	Token  string `json:"token"`
}

// ReferralRequest sends business to another member.
type ReferralRequest struct {
	ToMemberID  string `json:"toMemberId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReferralStatusRequest updates a referral's status.
type ReferralStatusRequest struct {
	Status string `json:"status"`
}

// Referral is a business introduction with both party summaries attached.
type Referral struct {
	ID          string        `json:"id"`
	FromMember  MemberSummary `json:"fromMember"`
	ToMember    MemberSummary `json:"toMember"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ReferralList splits a member's referrals by direction.
type ReferralList struct {
	Sent     []Referral `json:"sent"`
	Received []Referral `json:"received"`
}

// ThanksRequest publicly acknowledges another member.
type ThanksRequest struct {
	ToMemberID string `json:"toMemberId"`
	Message    string `json:"message"`
}

// Thanks is an acknowledgement with both party summaries attached.
type Thanks struct {
	ID         string        `json:"id"`
	FromMember MemberSummary `json:"fromMember"`
	ToMember   MemberSummary `json:"toMember"`
	Message    string        `json:"message"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// ThanksList splits a member's thanks by direction.
type ThanksList struct {
	Sent     []Thanks `json:"sent"`
	Received []Thanks `json:"received"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	ActiveMembers      int64     `json:"activeMembers"`
	ReferralsThisMonth int64     `json:"referralsThisMonth"`
	ThanksThisMonth    int64     `json:"thanksThisMonth"`
	MonthStartsAt      time.Time `json:"monthStartsAt"`
}

// BootstrapRequest creates the first admin account on a fresh install.
type BootstrapRequest struct {
	BootstrapToken string `json:"bootstrapToken"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
