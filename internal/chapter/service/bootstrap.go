package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/idx"
	"github.com/openchapter/chapter/pkg/slogx"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	ErrBootstrapDisabled   = errors.New("bootstrap is not configured")
	ErrBootstrapBadToken   = errors.New("bootstrap token mismatch")
	ErrAlreadyBootstrapped = errors.New("a member already exists")
)

// BootstrapService creates the first admin account on a fresh database.
// It works exactly once: as soon as any member exists, it refuses.
type BootstrapService struct {
	Store store.Store

	// Token must match the request's bootstrap token. Empty disables the
	// endpoint entirely.
	Token string
}

type BootstrapInput struct {
	FullName string
	Email    string
	Password string
}

func (in BootstrapInput) validate() error {
	return fieldErrors(validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Required, validation.Length(3, 160)),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 256)),
	))
}

// Bootstrap creates the first admin member.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, input BootstrapInput) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. The endpoint only works when a token is configured and matches.
	if s.Token == "" {
		return domain.Member{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("bootstrap attempted with wrong token")
		return domain.Member{}, ErrBootstrapBadToken
	}

	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)

	// 2. Validate input.
	if err := input.validate(); err != nil {
		return domain.Member{}, err
	}

	// 3. Refuse once any member exists.
	empty, err := s.Store.Members().IsEmpty(ctx)
	if err != nil {
		log.Error("failed to check member table", slog.Any("error", err))
		return domain.Member{}, err
	}
	if !empty {
		log.Warn("bootstrap attempted on non-empty member table")
		return domain.Member{}, ErrAlreadyBootstrapped
	}

	// 4. Create the admin.
	passwordHash, err := cryptox.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Member{}, err
	}

	now := time.Now().UTC()
	member := domain.Member{
		ID:           idx.New().String(),
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Admin:        true,
		Status:       domain.MemberActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Members().CreateMember(ctx, member); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrAlreadyBootstrapped
		}
		log.Error("failed to create bootstrap admin", slog.Any("error", err))
		return domain.Member{}, err
	}

	log.Info("bootstrap admin created",
		slog.String("member_id", member.ID),
	)

	return member, nil
}
