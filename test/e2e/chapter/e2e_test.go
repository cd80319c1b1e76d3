// Package chapter_test exercises the full HTTP surface end to end: real
// router, real services, real sqlite database, driven through the SDK.
package chapter_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	httpapi "github.com/openchapter/chapter/internal/chapter/http"
	"github.com/openchapter/chapter/internal/chapter/service"
	"github.com/openchapter/chapter/internal/chapter/store/drivers/sqlite"
	"github.com/openchapter/chapter/pkg/chaptersdk"
	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/jwtx"
	"github.com/openchapter/chapter/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const bootstrapToken = "e2e-bootstrap-token"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "chapter-e2e")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestServer boots the whole service in-process on a fresh database and
// returns a factory for independent SDK clients.
func newTestServer(t *testing.T) func() *chaptersdk.Client {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "chapter_e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("e2e-key", pemKey)
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "chapter",
		Version: "e2e",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter(
		jwtx.VerifierForSigner(signer, "chapter-api"),
		"e2e",
		[]string{"http://localhost"},
		st,
		logger,
	)
	router.IntentionService = &service.IntentionService{Store: st}
	router.AdmissionService = &service.AdmissionService{Store: st}
	router.SignupService = &service.SignupService{Store: st}
	router.SessionService = &service.SessionService{Store: st, Signer: signer, Issuer: "chapter-api"}
	router.DirectoryService = &service.DirectoryService{Store: st}
	router.ReferralService = &service.ReferralService{Store: st}
	router.ThanksService = &service.ThanksService{Store: st}
	router.DashboardService = &service.DashboardService{Store: st}
	router.BootstrapService = &service.BootstrapService{Store: st, Token: bootstrapToken}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return func() *chaptersdk.Client {
		return chaptersdk.NewClient(srv.URL)
	}
}

func requireAPIError(t *testing.T, err error, status int) *chaptersdk.APIError {
	t.Helper()

	var apiErr *chaptersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}

// newAdmin bootstraps the first admin and returns a logged-in client.
func newAdmin(t *testing.T, newClient func() *chaptersdk.Client) *chaptersdk.Client {
	t.Helper()
	ctx := context.Background()

	admin := newClient()
	_, err := admin.Bootstrap(ctx, chaptersdk.BootstrapRequest{
		BootstrapToken: bootstrapToken,
		FullName:       "Ada Admin",
		Email:          "ada@example.com",
		Password:       "admin-password",
	})
	require.NoError(t, err)

	_, err = admin.Login(ctx, "ada@example.com", "admin-password")
	require.NoError(t, err)
	return admin
}

// admitMember walks an intention through approval and signup and returns a
// logged-in client for the new member.
func admitMember(t *testing.T, newClient func() *chaptersdk.Client, admin *chaptersdk.Client, name, email, password string) *chaptersdk.Client {
	t.Helper()
	ctx := context.Background()

	public := newClient()
	in, err := public.SubmitIntention(ctx, chaptersdk.IntentionRequest{
		FullName: name,
		Email:    email,
	})
	require.NoError(t, err)

	decision, err := admin.DecideIntention(ctx, in.ID, "approved")
	require.NoError(t, err)
	require.NotEmpty(t, decision.InviteToken)

	_, err = public.CompleteSignup(ctx, decision.InviteToken, chaptersdk.SignupRequest{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	member := newClient()
	_, err = member.Login(ctx, email, password)
	require.NoError(t, err)
	return member
}

func TestMembershipJourney(t *testing.T) {
	newClient := newTestServer(t)
	ctx := context.Background()

	// Health first: the service is up and can reach its database.
	sys := newClient()
	live, err := sys.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	_, err = sys.Readyz(ctx)
	require.NoError(t, err)

	admin := newAdmin(t, newClient)

	// A prospective member submits an intention publicly.
	public := newClient()
	in, err := public.SubmitIntention(ctx, chaptersdk.IntentionRequest{
		FullName: "Jane Citizen",
		Email:    "jane@example.com",
		Company:  "Citizen Plumbing",
		Phone:    "0400 000 000",
		Notes:    "Met at the Tuesday breakfast.",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", in.Status)

	// The admin sees it in the queue.
	queue, err := admin.ListIntentions(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, in.ID, queue[0].ID)

	// Approval returns the invite token exactly once.
	decision, err := admin.DecideIntention(ctx, in.ID, "approved")
	require.NoError(t, err)
	require.Equal(t, "approved", decision.Intention.Status)
	require.NotEmpty(t, decision.InviteToken)
	require.NotNil(t, decision.InviteExpiresAt)

	// The invite prefills the signup form from the intention.
	prefill, err := public.SignupPrefill(ctx, decision.InviteToken)
	require.NoError(t, err)
	require.Equal(t, "Jane Citizen", prefill.FullName)
	require.Equal(t, "jane@example.com", prefill.Email)
	require.Equal(t, "Citizen Plumbing", prefill.Company)

	// Signup keeps the intention's identity and falls back to its company.
	member, err := public.CompleteSignup(ctx, decision.InviteToken, chaptersdk.SignupRequest{
		Email:    "jane@example.com",
		Password: "jane-password",
	})
	require.NoError(t, err)
	require.Equal(t, "Citizen Plumbing", member.Company)
	require.False(t, member.Admin)

	// The token is now dead, uniformly.
	_, err = public.SignupPrefill(ctx, decision.InviteToken)
	requireAPIError(t, err, 404)
	_, err = public.CompleteSignup(ctx, decision.InviteToken, chaptersdk.SignupRequest{
		Email:    "jane@example.com",
		Password: "other-password",
	})
	requireAPIError(t, err, 404)

	// Jane logs in and sees herself, and a directory without herself.
	jane := newClient()
	login, err := jane.Login(ctx, "jane@example.com", "jane-password")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	me, err := jane.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, member.ID, me.ID)

	directory, err := jane.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, directory, 1, "only the admin should be listed")
	require.NotEqual(t, member.ID, directory[0].ID)

	// Jane refers business to the admin; the admin moves it along.
	ref, err := jane.CreateReferral(ctx, chaptersdk.ReferralRequest{
		ToMemberID:  directory[0].ID,
		Title:       "Office fit-out",
		Description: "Full electrical package, needs quoting by March.",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", ref.Status)
	require.Equal(t, "Jane Citizen", ref.FromMember.FullName)

	updated, err := admin.UpdateReferralStatus(ctx, ref.ID, "won")
	require.NoError(t, err)
	require.Equal(t, "won", updated.Status)

	// The admin says thanks for the closed business.
	_, err = admin.GiveThanks(ctx, chaptersdk.ThanksRequest{
		ToMemberID: member.ID,
		Message:    "Closed the fit-out job, thanks for the intro!",
	})
	require.NoError(t, err)

	thanks, err := jane.ListThanks(ctx)
	require.NoError(t, err)
	require.Len(t, thanks.Received, 1)
	require.Equal(t, "Ada Admin", thanks.Received[0].FromMember.FullName)

	// The dashboard reflects all of it.
	dash, err := admin.GetDashboard(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, dash.ActiveMembers)
	require.EqualValues(t, 1, dash.ReferralsThisMonth)
	require.EqualValues(t, 1, dash.ThanksThisMonth)
	require.Equal(t, 1, dash.MonthStartsAt.Day())

	// Logout drops the client-side session.
	require.NoError(t, jane.Logout(ctx))
	require.Empty(t, jane.Token())
}

func TestInviteRegeneration(t *testing.T) {
	newClient := newTestServer(t)
	ctx := context.Background()

	admin := newAdmin(t, newClient)
	public := newClient()

	in, err := public.SubmitIntention(ctx, chaptersdk.IntentionRequest{
		FullName: "Sam Second",
		Email:    "sam@example.com",
	})
	require.NoError(t, err)

	first, err := admin.DecideIntention(ctx, in.ID, "approved")
	require.NoError(t, err)

	// Repeating the decision is a no-op and mints nothing.
	repeat, err := admin.DecideIntention(ctx, in.ID, "approved")
	require.NoError(t, err)
	require.Empty(t, repeat.InviteToken)

	// A rejection revokes the live invite outright.
	_, err = admin.DecideIntention(ctx, in.ID, "rejected")
	require.NoError(t, err)
	_, err = public.SignupPrefill(ctx, first.InviteToken)
	require.Error(t, err)

	// Approving again issues a fresh token and kills the old one for good.
	second, err := admin.DecideIntention(ctx, in.ID, "approved")
	require.NoError(t, err)
	require.NotEmpty(t, second.InviteToken)
	require.NotEqual(t, first.InviteToken, second.InviteToken)

	_, err = public.SignupPrefill(ctx, first.InviteToken)
	requireAPIError(t, err, 404)

	prefill, err := public.SignupPrefill(ctx, second.InviteToken)
	require.NoError(t, err)
	require.Equal(t, "sam@example.com", prefill.Email)
}

func TestSignupConflicts(t *testing.T) {
	newClient := newTestServer(t)
	ctx := context.Background()

	admin := newAdmin(t, newClient)
	public := newClient()

	in, err := public.SubmitIntention(ctx, chaptersdk.IntentionRequest{
		FullName: "Mia Mismatch",
		Email:    "mia@example.com",
	})
	require.NoError(t, err)

	decision, err := admin.DecideIntention(ctx, in.ID, "approved")
	require.NoError(t, err)

	// Wrong email against a live token is a conflict, not a 404.
	_, err = public.CompleteSignup(ctx, decision.InviteToken, chaptersdk.SignupRequest{
		Email:    "other@example.com",
		Password: "mia-password",
	})
	requireAPIError(t, err, 409)

	// A second intention for the same email is also a conflict.
	_, err = public.SubmitIntention(ctx, chaptersdk.IntentionRequest{
		FullName: "Mia Again",
		Email:    "MIA@example.com",
	})
	requireAPIError(t, err, 409)

	// Validation failures carry per-field errors.
	_, err = public.CompleteSignup(ctx, decision.InviteToken, chaptersdk.SignupRequest{
		Email:    "mia@example.com",
		Password: "short",
	})
	apiErr := requireAPIError(t, err, 400)
	require.Contains(t, apiErr.Errors, "Password")
}

func TestAccessControl(t *testing.T) {
	newClient := newTestServer(t)
	ctx := context.Background()

	admin := newAdmin(t, newClient)
	member := admitMember(t, newClient, admin, "Mel Member", "mel@example.com", "mel-password")

	t.Run("anonymous callers get 401 on member endpoints", func(t *testing.T) {
		anon := newClient()
		_, err := anon.ListMembers(ctx)
		requireAPIError(t, err, 401)
		_, err = anon.Me(ctx)
		requireAPIError(t, err, 401)
	})

	t.Run("members get 403 on admin endpoints", func(t *testing.T) {
		_, err := member.ListIntentions(ctx)
		requireAPIError(t, err, 403)
		_, err = member.GetDashboard(ctx)
		requireAPIError(t, err, 403)
	})

	t.Run("login failures are uniform", func(t *testing.T) {
		c := newClient()
		_, err := c.Login(ctx, "mel@example.com", "wrong-password")
		wrongPw := requireAPIError(t, err, 401)

		_, err = c.Login(ctx, "ghost@example.com", "mel-password")
		unknown := requireAPIError(t, err, 401)

		require.Equal(t, wrongPw.Message, unknown.Message)
	})

	t.Run("non-party cannot touch a referral", func(t *testing.T) {
		other := admitMember(t, newClient, admin, "Oli Other", "oli@example.com", "oli-password")

		meMember, err := member.Me(ctx)
		require.NoError(t, err)
		meAdmin, err := admin.Me(ctx)
		require.NoError(t, err)

		ref, err := member.CreateReferral(ctx, chaptersdk.ReferralRequest{
			ToMemberID:  meAdmin.ID,
			Title:       "Warehouse rewire",
			Description: "Insurance job, walls already open, quick win.",
		})
		require.NoError(t, err)

		_, err = other.UpdateReferralStatus(ctx, ref.ID, "won")
		requireAPIError(t, err, 403)

		// Self-referral sanity check while we're here.
		_, err = member.CreateReferral(ctx, chaptersdk.ReferralRequest{
			ToMemberID:  meMember.ID,
			Title:       "Me to me",
			Description: "This should never be allowed to happen.",
		})
		requireAPIError(t, err, 400)
	})

	t.Run("bootstrap is locked after first use", func(t *testing.T) {
		c := newClient()
		_, err := c.Bootstrap(ctx, chaptersdk.BootstrapRequest{
			BootstrapToken: bootstrapToken,
			FullName:       "Second Admin",
			Email:          "second@example.com",
			Password:       "second-password",
		})
		requireAPIError(t, err, 409)

		_, err = c.Bootstrap(ctx, chaptersdk.BootstrapRequest{
			BootstrapToken: "wrong-token",
			FullName:       "Evil Admin",
			Email:          "evil@example.com",
			Password:       "evil-password",
		})
		requireAPIError(t, err, 401)
	})
}

func TestSessionCookieFallback(t *testing.T) {
	newClient := newTestServer(t)
	ctx := context.Background()

	admin := newAdmin(t, newClient)

	// A client holding only the cookie-equivalent token works the same way
	// the browser does with the httpOnly cookie.
	fresh := newClient()
	fresh.SetToken(admin.Token())

	me, err := fresh.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", me.Email)

	// A mangled token is rejected outright.
	fresh.SetToken("not-a-jwt")
	_, err = fresh.Me(ctx)
	var apiErr *chaptersdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 401, apiErr.StatusCode)
}
