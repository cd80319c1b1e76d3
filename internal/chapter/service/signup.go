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
	"github.com/openchapter/chapter/pkg/idx"
	"github.com/openchapter/chapter/pkg/slogx"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	// ErrInviteInvalid covers unknown, used and expired tokens alike so the
	// response never reveals which check failed.
	ErrInviteInvalid = errors.New("invite is invalid or expired")

	ErrIntentionNotApproved = errors.New("intention is not approved")
	ErrSignupEmailMismatch  = errors.New("email does not match the approved intention")
	ErrMemberExists         = errors.New("a member already exists for this email")
)

// SignupService turns an approved intention plus a live invite token into a
// member account.
type SignupService struct {
	Store store.Store
}

type CompleteSignupInput struct {
	FullName string
	Email    string
	Password string
	Company  string
	Phone    string
}

func (in CompleteSignupInput) validate() error {
	return fieldErrors(validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Length(3, 160)),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 256)),
		validation.Field(&in.Company, validation.Length(0, 160)),
		validation.Field(&in.Phone, validation.Length(0, 40)),
	))
}

// resolveInvite fingerprints the raw token and applies the uniform validity
// rule: unknown, used or expired all collapse into ErrInviteInvalid.
func (s *SignupService) resolveInvite(ctx context.Context, rawToken string) (domain.InviteToken, domain.Intention, error) {
	log := slogx.FromContext(ctx)

	if rawToken == "" {
		return domain.InviteToken{}, domain.Intention{}, ErrInviteInvalid
	}

	hash := cryptox.FingerprintToken(rawToken)
	invite, intention, err := s.Store.Invites().GetInviteByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("signup attempted with unknown invite token")
			return domain.InviteToken{}, domain.Intention{}, ErrInviteInvalid
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.InviteToken{}, domain.Intention{}, err
	}

	if !invite.Redeemable(time.Now().UTC()) {
		log.Warn("signup attempted with dead invite token",
			slog.String("invite_id", invite.ID),
		)
		return domain.InviteToken{}, domain.Intention{}, ErrInviteInvalid
	}

	return invite, intention, nil
}

// Prefill returns the approved intention behind a live invite token so the
// signup form can present name, email and company ahead of submission. A
// token whose intention is no longer approved gets the same uniform invalid
// answer as an unknown, used or expired one.
func (s *SignupService) Prefill(ctx context.Context, rawToken string) (domain.Intention, error) {
	_, intention, err := s.resolveInvite(ctx, rawToken)
	if err != nil {
		return domain.Intention{}, err
	}

	if intention.Status != domain.IntentionApproved {
		slogx.FromContext(ctx).Warn("prefill attempted on intention no longer approved",
			slog.String("intention_id", intention.ID),
		)
		return domain.Intention{}, ErrInviteInvalid
	}

	return intention, nil
}

// CompleteSignup redeems the invite and creates the member account. The
// intention is the source of truth for the email; full name, company and
// phone fall back to the intention when the form leaves them blank.
func (s *SignupService) CompleteSignup(ctx context.Context, rawToken string, input CompleteSignupInput) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Company = strings.TrimSpace(input.Company)
	input.Phone = strings.TrimSpace(input.Phone)

	// 1. Validate input.
	if err := input.validate(); err != nil {
		return domain.Member{}, err
	}

	// 2. Resolve the invite under the uniform validity rule.
	invite, intention, err := s.resolveInvite(ctx, rawToken)
	if err != nil {
		return domain.Member{}, err
	}

	// 3. The intention must still be approved; a later rejection revokes
	// the invite even if the token itself is live.
	if intention.Status != domain.IntentionApproved {
		log.Warn("signup attempted on intention no longer approved",
			slog.String("intention_id", intention.ID),
			slog.String("status", intention.Status),
		)
		return domain.Member{}, ErrIntentionNotApproved
	}

	// 4. The submitted email must match the approved intention, ignoring case.
	if !strings.EqualFold(input.Email, intention.Email) {
		log.Warn("signup attempted with mismatched email",
			slog.String("intention_id", intention.ID),
		)
		return domain.Member{}, ErrSignupEmailMismatch
	}

	// 5. Refuse when a member already exists for the email.
	_, err = s.Store.Members().GetMemberByEmail(ctx, intention.Email)
	if err == nil {
		log.Warn("signup attempted for existing member",
			slog.String("intention_id", intention.ID),
		)
		return domain.Member{}, ErrMemberExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check member email", slog.Any("error", err))
		return domain.Member{}, err
	}

	// 6. Hash the password.
	passwordHash, err := cryptox.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Member{}, err
	}

	fullName := input.FullName
	if fullName == "" {
		fullName = intention.FullName
	}
	company := input.Company
	if company == "" {
		company = intention.Company
	}
	phone := input.Phone
	if phone == "" {
		phone = intention.Phone
	}

	now := time.Now().UTC()
	member := domain.Member{
		ID:           idx.New().String(),
		FullName:     fullName,
		Email:        intention.Email,
		Company:      company,
		Phone:        phone,
		PasswordHash: passwordHash,
		Admin:        false,
		Status:       domain.MemberActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 7. Create the member and burn the invite atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Members().CreateMember(ctx, member); err != nil {
			return err
		}
		return tx.Invites().MarkInviteUsed(ctx, invite.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrMemberExists
		}
		log.Error("failed to complete signup",
			slog.String("intention_id", intention.ID),
			slog.Any("error", err),
		)
		return domain.Member{}, err
	}

	log.Info("member signed up",
		slog.String("member_id", member.ID),
		slog.String("intention_id", intention.ID),
	)

	return member, nil
}
