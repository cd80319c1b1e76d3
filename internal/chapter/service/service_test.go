package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/internal/chapter/store/drivers/sqlite"
	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/idx"
	"github.com/openchapter/chapter/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "chapter-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "chapter_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestSigner(t *testing.T) *jwtx.EdDSASigner {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	return signer
}

// createMember inserts a member directly, bypassing the signup flow.
func createMember(t *testing.T, s store.Store, name, email, password string, admin bool, status string) domain.Member {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	m := domain.Member{
		ID:           idx.New().String(),
		FullName:     name,
		Email:        email,
		Company:      "Test Co",
		PasswordHash: hash,
		Admin:        admin,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Members().CreateMember(context.Background(), m))
	return m
}

func TestSubmitIntention(t *testing.T) {
	s := newTestStore(t)
	svc := &service.IntentionService{Store: s}
	ctx := context.Background()

	t.Run("valid submission lands as pending", func(t *testing.T) {
		got, err := svc.SubmitIntention(ctx, service.SubmitIntentionInput{
			FullName: "Jane Citizen",
			Email:    "jane@example.com",
			Company:  "Citizen Plumbing",
			Notes:    "Met at the Tuesday breakfast.",
		})
		require.NoError(t, err)
		require.Equal(t, domain.IntentionPending, got.Status)
		require.NotEmpty(t, got.ID)
	})

	t.Run("duplicate email is rejected regardless of case", func(t *testing.T) {
		_, err := svc.SubmitIntention(ctx, service.SubmitIntentionInput{
			FullName: "Jane Again",
			Email:    "JANE@example.com",
		})
		require.ErrorIs(t, err, service.ErrIntentionExists)
	})

	t.Run("invalid fields come back as per-field errors", func(t *testing.T) {
		_, err := svc.SubmitIntention(ctx, service.SubmitIntentionInput{
			FullName: "ab",
			Email:    "not-an-email",
		})
		fe, ok := service.AsFieldErrors(err)
		require.True(t, ok, "expected field errors, got %v", err)
		require.Contains(t, fe, "FullName")
		require.Contains(t, fe, "Email")
	})
}

func TestDecide(t *testing.T) {
	s := newTestStore(t)
	intentions := &service.IntentionService{Store: s}
	admissions := &service.AdmissionService{Store: s}
	ctx := context.Background()

	submit := func(email string) domain.Intention {
		in, err := intentions.SubmitIntention(ctx, service.SubmitIntentionInput{
			FullName: "Sample Person",
			Email:    email,
		})
		require.NoError(t, err)
		return in
	}

	t.Run("approval mints an invite token", func(t *testing.T) {
		in := submit("approve@example.com")

		res, err := admissions.Decide(ctx, in.ID, domain.IntentionApproved)
		require.NoError(t, err)
		require.Equal(t, domain.IntentionApproved, res.Intention.Status)
		require.NotEmpty(t, res.InviteToken)
		require.WithinDuration(t, time.Now().Add(domain.InviteTokenTTL), res.InviteExpiresAt, time.Minute)

		// only the fingerprint is stored
		inv, err := s.Invites().GetInviteByIntentionID(ctx, in.ID)
		require.NoError(t, err)
		require.NotEqual(t, res.InviteToken, inv.TokenHash)
		require.Equal(t, cryptox.FingerprintToken(res.InviteToken), inv.TokenHash)
	})

	t.Run("repeating the same decision is a no-op", func(t *testing.T) {
		in := submit("idempotent@example.com")

		first, err := admissions.Decide(ctx, in.ID, domain.IntentionApproved)
		require.NoError(t, err)

		again, err := admissions.Decide(ctx, in.ID, domain.IntentionApproved)
		require.NoError(t, err)
		require.Empty(t, again.InviteToken, "no-op must not mint a token")

		inv, err := s.Invites().GetInviteByIntentionID(ctx, in.ID)
		require.NoError(t, err)
		require.Equal(t, cryptox.FingerprintToken(first.InviteToken), inv.TokenHash,
			"no-op must not replace the stored token")
	})

	t.Run("re-approving after rejection replaces the token", func(t *testing.T) {
		in := submit("reapprove@example.com")

		first, err := admissions.Decide(ctx, in.ID, domain.IntentionApproved)
		require.NoError(t, err)

		_, err = admissions.Decide(ctx, in.ID, domain.IntentionRejected)
		require.NoError(t, err)

		second, err := admissions.Decide(ctx, in.ID, domain.IntentionApproved)
		require.NoError(t, err)
		require.NotEmpty(t, second.InviteToken)
		require.NotEqual(t, first.InviteToken, second.InviteToken)

		inv, err := s.Invites().GetInviteByIntentionID(ctx, in.ID)
		require.NoError(t, err)
		require.Equal(t, cryptox.FingerprintToken(second.InviteToken), inv.TokenHash)
	})

	t.Run("rejection mints nothing", func(t *testing.T) {
		in := submit("reject@example.com")

		res, err := admissions.Decide(ctx, in.ID, domain.IntentionRejected)
		require.NoError(t, err)
		require.Empty(t, res.InviteToken)

		_, err = s.Invites().GetInviteByIntentionID(ctx, in.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("bad decision value", func(t *testing.T) {
		in := submit("badvalue@example.com")
		_, err := admissions.Decide(ctx, in.ID, "maybe")
		require.ErrorIs(t, err, service.ErrInvalidDecision)
	})

	t.Run("unknown intention", func(t *testing.T) {
		_, err := admissions.Decide(ctx, idx.New().String(), domain.IntentionApproved)
		require.ErrorIs(t, err, service.ErrIntentionNotFound)
	})
}

func TestSignup(t *testing.T) {
	s := newTestStore(t)
	intentions := &service.IntentionService{Store: s}
	admissions := &service.AdmissionService{Store: s}
	signups := &service.SignupService{Store: s}
	ctx := context.Background()

	approve := func(email string) (domain.Intention, string) {
		in, err := intentions.SubmitIntention(ctx, service.SubmitIntentionInput{
			FullName: "Sample Person",
			Email:    email,
			Company:  "Original Co",
			Phone:    "0400 000 000",
		})
		require.NoError(t, err)

		res, err := admissions.Decide(ctx, in.ID, domain.IntentionApproved)
		require.NoError(t, err)
		return res.Intention, res.InviteToken
	}

	t.Run("prefill returns the intention behind a live token", func(t *testing.T) {
		in, token := approve("prefill@example.com")

		got, err := signups.Prefill(ctx, token)
		require.NoError(t, err)
		require.Equal(t, in.ID, got.ID)
		require.Equal(t, "prefill@example.com", got.Email)
	})

	t.Run("prefill with garbage token", func(t *testing.T) {
		_, err := signups.Prefill(ctx, "nope")
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("signup creates the member and burns the token", func(t *testing.T) {
		in, token := approve("signup@example.com")

		member, err := signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "SIGNUP@example.com", // case differs, still matches
			Password: "correct-horse-battery",
			Phone:    "0411 111 111",
		})
		require.NoError(t, err)
		require.Equal(t, in.FullName, member.FullName)
		require.Equal(t, "signup@example.com", member.Email, "intention email is the source of truth")
		require.Equal(t, "Original Co", member.Company, "blank company falls back to the intention")
		require.Equal(t, "0411 111 111", member.Phone)
		require.False(t, member.Admin)
		require.Equal(t, domain.MemberActive, member.Status)

		// the token is single-use
		_, err = signups.Prefill(ctx, token)
		require.ErrorIs(t, err, service.ErrInviteInvalid)

		_, err = signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "signup@example.com",
			Password: "another-password",
		})
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("submitted full name overrides the intention's", func(t *testing.T) {
		_, token := approve("rename@example.com")

		member, err := signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			FullName: "Preferred Name",
			Email:    "rename@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		require.Equal(t, "Preferred Name", member.FullName)
	})

	t.Run("email mismatch is refused", func(t *testing.T) {
		_, token := approve("match@example.com")

		_, err := signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "other@example.com",
			Password: "whatever-password",
		})
		require.ErrorIs(t, err, service.ErrSignupEmailMismatch)
	})

	t.Run("rejection after approval revokes the invite", func(t *testing.T) {
		in, token := approve("revoked@example.com")

		_, err := admissions.Decide(ctx, in.ID, domain.IntentionRejected)
		require.NoError(t, err)

		// prefill must not reveal that the intention was rejected
		_, err = signups.Prefill(ctx, token)
		require.ErrorIs(t, err, service.ErrInviteInvalid)

		_, err = signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "revoked@example.com",
			Password: "whatever-password",
		})
		require.ErrorIs(t, err, service.ErrIntentionNotApproved)
	})

	t.Run("expired token is refused like an unknown one", func(t *testing.T) {
		in, token := approve("expired@example.com")

		// backdate the invite past its expiry
		now := time.Now().UTC()
		err := s.Invites().UpsertInviteToken(ctx, domain.InviteToken{
			ID:          idx.New().String(),
			IntentionID: in.ID,
			TokenHash:   cryptox.FingerprintToken(token),
			ExpiresAt:   now.Add(-time.Hour),
			Used:        false,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, err)

		_, err = signups.Prefill(ctx, token)
		require.ErrorIs(t, err, service.ErrInviteInvalid)

		_, err = signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "expired@example.com",
			Password: "whatever-password",
		})
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("existing member is refused", func(t *testing.T) {
		_, token := approve("taken@example.com")
		createMember(t, s, "Already Here", "taken@example.com", "some-password", false, domain.MemberActive)

		_, err := signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "taken@example.com",
			Password: "whatever-password",
		})
		require.ErrorIs(t, err, service.ErrMemberExists)
	})

	t.Run("short password is a field error", func(t *testing.T) {
		_, token := approve("shortpw@example.com")

		_, err := signups.CompleteSignup(ctx, token, service.CompleteSignupInput{
			Email:    "shortpw@example.com",
			Password: "short",
		})
		fe, ok := service.AsFieldErrors(err)
		require.True(t, ok, "expected field errors, got %v", err)
		require.Contains(t, fe, "Password")
	})
}

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	signer := newTestSigner(t)
	sessions := &service.SessionService{Store: s, Signer: signer, Issuer: "chapter-api"}
	verifier := jwtx.VerifierForSigner(signer, "chapter-api")
	ctx := context.Background()

	admin := createMember(t, s, "Ada Admin", "ada@example.com", "admin-password", true, domain.MemberActive)
	member := createMember(t, s, "Mel Member", "mel@example.com", "member-password", false, domain.MemberActive)
	createMember(t, s, "Ivy Inactive", "ivy@example.com", "ivy-password", false, domain.MemberInactive)

	t.Run("valid login returns a verifiable session token", func(t *testing.T) {
		got, token, err := sessions.Login(ctx, "mel@example.com", "member-password")
		require.NoError(t, err)
		require.Equal(t, member.ID, got.ID)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, member.ID, claims.Subject)
		require.Equal(t, jwtx.RoleMember, claims.Role)
		require.WithinDuration(t, time.Now().Add(jwtx.DefaultSessionTTL), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("admins get the admin role", func(t *testing.T) {
		_, token, err := sessions.Login(ctx, "ADA@example.com", "admin-password")
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, admin.ID, claims.Subject)
		require.True(t, claims.IsAdmin())
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, err := sessions.Login(ctx, "mel@example.com", "wrong-password")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, _, err2 := sessions.Login(ctx, "nobody@example.com", "member-password")
		require.ErrorIs(t, err2, service.ErrInvalidCredentials)
		require.Equal(t, err.Error(), err2.Error())
	})

	t.Run("inactive member is refused with the right password", func(t *testing.T) {
		_, _, err := sessions.Login(ctx, "ivy@example.com", "ivy-password")
		require.ErrorIs(t, err, service.ErrMemberInactive)
	})

	t.Run("inactive member is refused before the password check", func(t *testing.T) {
		_, _, err := sessions.Login(ctx, "ivy@example.com", "wrong-password")
		require.ErrorIs(t, err, service.ErrMemberInactive)
	})

	t.Run("member without a password hash cannot log in", func(t *testing.T) {
		now := time.Now().UTC()
		err := s.Members().CreateMember(ctx, domain.Member{
			ID:        idx.New().String(),
			FullName:  "Hal Hashless",
			Email:     "hal@example.com",
			Status:    domain.MemberActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)

		_, _, err = sessions.Login(ctx, "hal@example.com", "any-password")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestReferrals(t *testing.T) {
	s := newTestStore(t)
	referrals := &service.ReferralService{Store: s}
	ctx := context.Background()

	alice := createMember(t, s, "Alice Able", "alice@example.com", "alice-password", false, domain.MemberActive)
	bob := createMember(t, s, "Bob Baker", "bob@example.com", "bob-password", false, domain.MemberActive)
	carol := createMember(t, s, "Carol Cook", "carol@example.com", "carol-password", false, domain.MemberActive)
	ivy := createMember(t, s, "Ivy Inactive", "ivy@example.com", "ivy-password", false, domain.MemberInactive)

	input := service.CreateReferralInput{
		ToMemberID:  bob.ID,
		Title:       "Office fit-out",
		Description: "Full electrical package, needs quoting by March.",
	}

	t.Run("self-referral is refused", func(t *testing.T) {
		in := input
		in.ToMemberID = alice.ID
		_, err := referrals.CreateReferral(ctx, alice.ID, in)
		require.ErrorIs(t, err, service.ErrSelfReferral)
	})

	t.Run("unknown and inactive targets look the same", func(t *testing.T) {
		in := input
		in.ToMemberID = idx.New().String()
		_, err := referrals.CreateReferral(ctx, alice.ID, in)
		require.ErrorIs(t, err, service.ErrMemberNotFound)

		in.ToMemberID = ivy.ID
		_, err = referrals.CreateReferral(ctx, alice.ID, in)
		require.ErrorIs(t, err, service.ErrMemberNotFound)
	})

	ref, err := referrals.CreateReferral(ctx, alice.ID, input)
	require.NoError(t, err)
	require.Equal(t, domain.ReferralPending, ref.Status)
	require.Equal(t, "Bob Baker", ref.ToMember.FullName)

	t.Run("only a party may change the status", func(t *testing.T) {
		_, err := referrals.UpdateStatus(ctx, carol.ID, ref.ID, domain.ReferralWon)
		require.ErrorIs(t, err, service.ErrNotReferralParty)

		got, err := referrals.UpdateStatus(ctx, bob.ID, ref.ID, domain.ReferralInProgress)
		require.NoError(t, err)
		require.Equal(t, domain.ReferralInProgress, got.Status)

		got, err = referrals.UpdateStatus(ctx, alice.ID, ref.ID, domain.ReferralWon)
		require.NoError(t, err)
		require.Equal(t, domain.ReferralWon, got.Status)
	})

	t.Run("bad status value", func(t *testing.T) {
		_, err := referrals.UpdateStatus(ctx, alice.ID, ref.ID, "celebrated")
		require.ErrorIs(t, err, service.ErrInvalidReferralState)
	})

	t.Run("listings split by direction", func(t *testing.T) {
		sent, received, err := referrals.ListReferrals(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, sent, 1)
		require.Empty(t, received)

		sent, received, err = referrals.ListReferrals(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, sent)
		require.Len(t, received, 1)
	})
}

func TestThanksAndDashboard(t *testing.T) {
	s := newTestStore(t)
	thanks := &service.ThanksService{Store: s}
	referrals := &service.ReferralService{Store: s}
	dashboards := &service.DashboardService{Store: s}
	ctx := context.Background()

	alice := createMember(t, s, "Alice Able", "alice@example.com", "alice-password", false, domain.MemberActive)
	bob := createMember(t, s, "Bob Baker", "bob@example.com", "bob-password", false, domain.MemberActive)
	createMember(t, s, "Ivy Inactive", "ivy@example.com", "ivy-password", false, domain.MemberInactive)

	t.Run("thanking yourself is refused", func(t *testing.T) {
		_, err := thanks.GiveThanks(ctx, alice.ID, service.GiveThanksInput{
			ToMemberID: alice.ID,
			Message:    "Great job me.",
		})
		require.ErrorIs(t, err, service.ErrSelfThanks)
	})

	_, err := thanks.GiveThanks(ctx, alice.ID, service.GiveThanksInput{
		ToMemberID: bob.ID,
		Message:    "Closed the fit-out job, thanks for the intro!",
	})
	require.NoError(t, err)

	_, err = referrals.CreateReferral(ctx, bob.ID, service.CreateReferralInput{
		ToMemberID:  alice.ID,
		Title:       "Warehouse rewire",
		Description: "Insurance job, walls already open, quick win.",
	})
	require.NoError(t, err)

	t.Run("listings carry party summaries", func(t *testing.T) {
		sent, received, err := thanks.ListThanks(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, sent)
		require.Len(t, received, 1)
		require.Equal(t, "Alice Able", received[0].FromMember.FullName)
	})

	t.Run("dashboard counts this month", func(t *testing.T) {
		d, err := dashboards.Metrics(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, d.ActiveMembers, "inactive members don't count")
		require.EqualValues(t, 1, d.ReferralsThisMonth)
		require.EqualValues(t, 1, d.ThanksThisMonth)
		require.Equal(t, 1, d.MonthStartsAt.Day())
		require.Equal(t, time.UTC, d.MonthStartsAt.Location())
	})
}

func TestBootstrap(t *testing.T) {
	s := newTestStore(t)
	bootstrap := &service.BootstrapService{Store: s, Token: "super-secret"}
	ctx := context.Background()

	input := service.BootstrapInput{
		FullName: "First Admin",
		Email:    "admin@example.com",
		Password: "admin-password",
	}

	t.Run("wrong token is refused", func(t *testing.T) {
		_, err := bootstrap.Bootstrap(ctx, "wrong", input)
		require.ErrorIs(t, err, service.ErrBootstrapBadToken)
	})

	t.Run("unconfigured token disables the endpoint", func(t *testing.T) {
		disabled := &service.BootstrapService{Store: s}
		_, err := disabled.Bootstrap(ctx, "", input)
		require.ErrorIs(t, err, service.ErrBootstrapDisabled)
	})

	t.Run("first call creates the admin", func(t *testing.T) {
		member, err := bootstrap.Bootstrap(ctx, "super-secret", input)
		require.NoError(t, err)
		require.True(t, member.Admin)
		require.Equal(t, domain.MemberActive, member.Status)
	})

	t.Run("second call is refused", func(t *testing.T) {
		_, err := bootstrap.Bootstrap(ctx, "super-secret", input)
		require.ErrorIs(t, err, service.ErrAlreadyBootstrapped)
	})
}
