package store

import (
	"context"
	"errors"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable, and an explicit transaction scope so the
// service layer controls atomicity instead of relying on an ambient
// database handle.
type Store interface {
	Intentions() Intentions
	Invites() Invites
	Members() Members
	Referrals() Referrals
	Thanks() Thanks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes (decision + invite upsert,
	// member create + token consume).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped store. It embeds the same repositories but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Intentions interface {
	// CreateIntention inserts a new pending intention (id is a ULID provided
	// by the app). Returns ErrAlreadyExists when the email is already taken,
	// which is the authoritative guard against a check-then-insert race.
	CreateIntention(ctx context.Context, in domain.Intention) error

	// GetIntentionByID returns an intention by id.
	GetIntentionByID(ctx context.Context, id string) (domain.Intention, error)

	// GetIntentionByEmail matches case-insensitively.
	GetIntentionByEmail(ctx context.Context, email string) (domain.Intention, error)

	// ListIntentions returns all intentions, newest first.
	ListIntentions(ctx context.Context) ([]domain.Intention, error)

	// UpdateIntentionStatus sets the status and bumps updated_at.
	UpdateIntentionStatus(ctx context.Context, id, status string) error
}

type Invites interface {
	// UpsertInviteToken writes the invite row for an intention, replacing
	// token hash, expiry and used flag if one already exists. There is at
	// most one invite per intention.
	UpsertInviteToken(ctx context.Context, inv domain.InviteToken) error

	// GetInviteByIntentionID returns the invite row for an intention.
	GetInviteByIntentionID(ctx context.Context, intentionID string) (domain.InviteToken, error)

	// GetInviteByTokenHash returns the invite joined with its intention.
	// It does not filter on used/expired; callers decide how to respond
	// without leaking which check failed.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.InviteToken, domain.Intention, error)

	// MarkInviteUsed sets used=1 and bumps updated_at (transaction-friendly).
	MarkInviteUsed(ctx context.Context, id string) error
}

type Members interface {
	// CreateMember inserts a new member. Returns ErrAlreadyExists when the
	// email is already registered.
	CreateMember(ctx context.Context, m domain.Member) error

	// GetMemberByID returns a member by id.
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)

	// GetMemberByEmail matches case-insensitively.
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)

	// ListActiveMembers returns active members excluding excludeID,
	// ordered by full name.
	ListActiveMembers(ctx context.Context, excludeID string) ([]domain.MemberSummary, error)

	// CountActiveMembers returns the number of active members.
	CountActiveMembers(ctx context.Context) (int64, error)

	// IsEmpty reports whether there are no members (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}

type Referrals interface {
	// CreateReferral inserts a new referral with status=pending.
	CreateReferral(ctx context.Context, r domain.Referral) error

	// GetReferralByID returns a referral with party summaries populated.
	GetReferralByID(ctx context.Context, id string) (domain.Referral, error)

	// ListReferralsFrom returns referrals sent by a member, newest first.
	ListReferralsFrom(ctx context.Context, memberID string) ([]domain.Referral, error)

	// ListReferralsTo returns referrals received by a member, newest first.
	ListReferralsTo(ctx context.Context, memberID string) ([]domain.Referral, error)

	// UpdateReferralStatus sets the status and bumps updated_at.
	UpdateReferralStatus(ctx context.Context, id, status string) error

	// CountReferralsSince counts referrals created at or after t.
	CountReferralsSince(ctx context.Context, t time.Time) (int64, error)
}

type Thanks interface {
	// CreateThanks inserts a new thanks record.
	CreateThanks(ctx context.Context, th domain.Thanks) error

	// ListThanksFrom returns thanks sent by a member, newest first.
	ListThanksFrom(ctx context.Context, memberID string) ([]domain.Thanks, error)

	// ListThanksTo returns thanks received by a member, newest first.
	ListThanksTo(ctx context.Context, memberID string) ([]domain.Thanks, error)

	// CountThanksSince counts thanks created at or after t.
	CountThanksSince(ctx context.Context, t time.Time) (int64, error)
}
