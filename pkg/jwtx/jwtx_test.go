package jwtx_test

import (
	"testing"
	"time"

	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "session-key-001")
	verifier := jwtx.VerifierForSigner(signer, "chapter-api")

	claims := jwtx.NewSessionClaims(
		"01J0MEMBER", jwtx.RoleAdmin, "chapter-api",
		jwtx.DefaultSessionTTL, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J0MEMBER", got.Subject)
	require.Equal(t, jwtx.RoleAdmin, got.Role)
	require.True(t, got.IsAdmin())
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "session-key-001")
	verifier := jwtx.VerifierForSigner(signer, "chapter-api")

	claims := jwtx.NewSessionClaims(
		"01J0MEMBER", jwtx.RoleMember, "chapter-api",
		time.Minute, time.Now().UTC().Add(-time.Hour),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "session-key-001")
	other := newTestSigner(t, "session-key-001")
	verifier := jwtx.VerifierForSigner(other, "chapter-api")

	claims := jwtx.NewSessionClaims(
		"01J0MEMBER", jwtx.RoleMember, "chapter-api",
		jwtx.DefaultSessionTTL, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsUnknownKID(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "session-key-001")
	verifier := jwtx.NewVerifierEdDSA("session-key-002", signer.Public(), "chapter-api")

	claims := jwtx.NewSessionClaims(
		"01J0MEMBER", jwtx.RoleMember, "chapter-api",
		jwtx.DefaultSessionTTL, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrUnknownKID)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "session-key-001")
	verifier := jwtx.VerifierForSigner(signer, "someone-else")

	claims := jwtx.NewSessionClaims(
		"01J0MEMBER", jwtx.RoleMember, "chapter-api",
		jwtx.DefaultSessionTTL, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "session-key-001")
	verifier := jwtx.VerifierForSigner(signer, "chapter-api")

	_, err := verifier.Verify("not.a.jwt")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}
