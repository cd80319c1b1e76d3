package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/jwtx"
	"github.com/openchapter/chapter/pkg/slogx"
)

var (
	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike; the login response must not distinguish them.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMemberInactive = errors.New("member is inactive")
	ErrMemberNotFound = errors.New("member not found")
)

// SessionService authenticates members and issues session JWTs.
type SessionService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
}

// Login verifies the credentials and returns the member with a signed
// session token.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Member, string, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Member{}, "", ErrInvalidCredentials
	}

	// 1. Look up the member.
	member, err := s.Store.Members().GetMemberByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown email")
			return domain.Member{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch member", slog.Any("error", err))
		return domain.Member{}, "", err
	}

	// 2. Inactive members are refused before any password work.
	if !member.IsActive() {
		log.Warn("login attempted by inactive member",
			slog.String("member_id", member.ID),
		)
		return domain.Member{}, "", ErrMemberInactive
	}

	// 3. Verify the password. A missing or malformed stored hash gets the
	// same answer as a wrong password; the detail stays in the log.
	if member.PasswordHash == "" {
		log.Warn("login attempted against member without password hash",
			slog.String("member_id", member.ID),
		)
		return domain.Member{}, "", ErrInvalidCredentials
	}
	if err := cryptox.VerifyPassword(password, member.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("failed to verify password",
				slog.String("member_id", member.ID),
				slog.Any("error", err),
			)
		} else {
			log.Warn("login attempted with wrong password",
				slog.String("member_id", member.ID),
			)
		}
		return domain.Member{}, "", ErrInvalidCredentials
	}

	// 4. Issue the session token.
	token, err := s.issueToken(member)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Member{}, "", err
	}

	log.Info("member logged in",
		slog.String("member_id", member.ID),
	)

	return member, token, nil
}

// Me returns the active member behind a session subject.
func (s *SessionService) Me(ctx context.Context, memberID string) (domain.Member, error) {
	member, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, ErrMemberNotFound
		}
		return domain.Member{}, err
	}
	if !member.IsActive() {
		return domain.Member{}, ErrMemberInactive
	}
	return member, nil
}

func (s *SessionService) issueToken(member domain.Member) (string, error) {
	role := jwtx.RoleMember
	if member.Admin {
		role = jwtx.RoleAdmin
	}

	claims := jwtx.NewSessionClaims(member.ID, role, s.Issuer, jwtx.DefaultSessionTTL, time.Now().UTC())
	return s.Signer.Sign(claims)
}
