package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/internal/chapter/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "chapter_test.db")
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedIntention(t *testing.T, s store.Store, email string) domain.Intention {
	t.Helper()

	now := time.Now().UTC()
	in := domain.Intention{
		ID:        "01J" + email[:4] + "INTENTION",
		FullName:  "Sample Person",
		Email:     email,
		Company:   "Acme Pty Ltd",
		Status:    domain.IntentionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Intentions().CreateIntention(context.Background(), in))
	return in
}

func seedMember(t *testing.T, s store.Store, id, name, email string) domain.Member {
	t.Helper()

	now := time.Now().UTC()
	m := domain.Member{
		ID:           id,
		FullName:     name,
		Email:        email,
		Company:      "Acme Pty Ltd",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Status:       domain.MemberActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Members().CreateMember(context.Background(), m))
	return m
}

func TestIntentions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := seedIntention(t, s, "jane@example.com")

	t.Run("get by id", func(t *testing.T) {
		got, err := s.Intentions().GetIntentionByID(ctx, in.ID)
		require.NoError(t, err)
		require.Equal(t, "jane@example.com", got.Email)
		require.Equal(t, domain.IntentionPending, got.Status)
	})

	t.Run("email lookup ignores case", func(t *testing.T) {
		got, err := s.Intentions().GetIntentionByEmail(ctx, "JANE@Example.COM")
		require.NoError(t, err)
		require.Equal(t, in.ID, got.ID)
	})

	t.Run("duplicate email rejected regardless of case", func(t *testing.T) {
		dup := in
		dup.ID = "01JDUPINTENTION000000000"
		dup.Email = "Jane@Example.com"
		err := s.Intentions().CreateIntention(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("status update", func(t *testing.T) {
		require.NoError(t, s.Intentions().UpdateIntentionStatus(ctx, in.ID, domain.IntentionApproved))
		got, err := s.Intentions().GetIntentionByID(ctx, in.ID)
		require.NoError(t, err)
		require.Equal(t, domain.IntentionApproved, got.Status)
	})

	t.Run("status update of unknown id", func(t *testing.T) {
		err := s.Intentions().UpdateIntentionStatus(ctx, "01JMISSING00000000000000", domain.IntentionApproved)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		list, err := s.Intentions().ListIntentions(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestInviteUpsertReplacesToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := seedIntention(t, s, "invite@example.com")
	now := time.Now().UTC()

	first := domain.InviteToken{
		ID:          "01JINVITE000000000000001",
		IntentionID: in.ID,
		TokenHash:   "hash-one",
		ExpiresAt:   now.Add(domain.InviteTokenTTL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Invites().UpsertInviteToken(ctx, first))

	require.NoError(t, s.Invites().MarkInviteUsed(ctx, first.ID))

	second := first
	second.ID = "01JINVITE000000000000002"
	second.TokenHash = "hash-two"
	second.Used = false
	require.NoError(t, s.Invites().UpsertInviteToken(ctx, second))

	got, err := s.Invites().GetInviteByIntentionID(ctx, in.ID)
	require.NoError(t, err)
	require.Equal(t, "hash-two", got.TokenHash)
	require.False(t, got.Used, "upsert must reset the used flag")
	// the row id is stable across upserts
	require.Equal(t, first.ID, got.ID)

	_, _, err = s.Invites().GetInviteByTokenHash(ctx, "hash-one")
	require.ErrorIs(t, err, store.ErrNotFound)

	inv, intent, err := s.Invites().GetInviteByTokenHash(ctx, "hash-two")
	require.NoError(t, err)
	require.Equal(t, in.ID, inv.IntentionID)
	require.Equal(t, "invite@example.com", intent.Email)
}

func TestMembers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Members().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	alice := seedMember(t, s, "01JMEMBER00000000000000A", "Alice Able", "alice@example.com")
	bob := seedMember(t, s, "01JMEMBER00000000000000B", "Bob Baker", "bob@example.com")

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := alice
		dup.ID = "01JMEMBER00000000000000C"
		dup.Email = "ALICE@example.com"
		require.ErrorIs(t, s.Members().CreateMember(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookup by email ignores case", func(t *testing.T) {
		got, err := s.Members().GetMemberByEmail(ctx, "Alice@Example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
	})

	t.Run("active listing excludes the viewer", func(t *testing.T) {
		list, err := s.Members().ListActiveMembers(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, bob.ID, list[0].ID)
		require.Equal(t, "Bob Baker", list[0].FullName)
	})

	t.Run("count", func(t *testing.T) {
		n, err := s.Members().CountActiveMembers(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		empty, err := s.Members().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})
}

func TestReferrals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedMember(t, s, "01JMEMBER00000000000000A", "Alice Able", "alice@example.com")
	bob := seedMember(t, s, "01JMEMBER00000000000000B", "Bob Baker", "bob@example.com")

	now := time.Now().UTC()
	ref := domain.Referral{
		ID:           "01JREFERRAL0000000000001",
		FromMemberID: alice.ID,
		ToMemberID:   bob.ID,
		Title:        "Fit-out for a new office",
		Description:  "They need the full electrical package done by March.",
		Status:       domain.ReferralPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Referrals().CreateReferral(ctx, ref))

	t.Run("get populates both parties", func(t *testing.T) {
		got, err := s.Referrals().GetReferralByID(ctx, ref.ID)
		require.NoError(t, err)
		require.Equal(t, "Alice Able", got.FromMember.FullName)
		require.Equal(t, "Bob Baker", got.ToMember.FullName)
		require.Equal(t, bob.ID, got.ToMember.ID)
	})

	t.Run("from and to listings", func(t *testing.T) {
		sent, err := s.Referrals().ListReferralsFrom(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, sent, 1)

		received, err := s.Referrals().ListReferralsTo(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, received, 1)

		none, err := s.Referrals().ListReferralsTo(ctx, alice.ID)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("status update", func(t *testing.T) {
		require.NoError(t, s.Referrals().UpdateReferralStatus(ctx, ref.ID, domain.ReferralWon))
		got, err := s.Referrals().GetReferralByID(ctx, ref.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ReferralWon, got.Status)
	})

	t.Run("count since", func(t *testing.T) {
		n, err := s.Referrals().CountReferralsSince(ctx, now.Add(-time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = s.Referrals().CountReferralsSince(ctx, now.Add(time.Minute))
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestThanks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := seedMember(t, s, "01JMEMBER00000000000000A", "Alice Able", "alice@example.com")
	bob := seedMember(t, s, "01JMEMBER00000000000000B", "Bob Baker", "bob@example.com")

	now := time.Now().UTC()
	th := domain.Thanks{
		ID:           "01JTHANKS000000000000001",
		FromMemberID: bob.ID,
		ToMemberID:   alice.ID,
		Message:      "Closed the deal you sent through, thank you!",
		CreatedAt:    now,
	}
	require.NoError(t, s.Thanks().CreateThanks(ctx, th))

	received, err := s.Thanks().ListThanksTo(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Equal(t, "Bob Baker", received[0].FromMember.FullName)

	sent, err := s.Thanks().ListThanksFrom(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	n, err := s.Thanks().CountThanksSince(ctx, now.Add(-time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := seedIntention(t, s, "tx@example.com")
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Intentions().UpdateIntentionStatus(ctx, in.ID, domain.IntentionApproved); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Intentions().GetIntentionByID(ctx, in.ID)
	require.NoError(t, err)
	require.Equal(t, domain.IntentionPending, got.Status, "rolled back write must not stick")
}
