package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/idx"
	"github.com/openchapter/chapter/pkg/slogx"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrSelfReferral         = errors.New("cannot refer business to yourself")
	ErrReferralNotFound     = errors.New("referral not found")
	ErrNotReferralParty     = errors.New("only the sender or recipient may update a referral")
	ErrInvalidReferralState = errors.New("invalid referral status")
)

// ReferralService manages business introductions between members.
type ReferralService struct {
	Store store.Store
}

type CreateReferralInput struct {
	ToMemberID  string
	Title       string
	Description string
}

func (in CreateReferralInput) validate() error {
	return fieldErrors(validation.ValidateStruct(&in,
		validation.Field(&in.ToMemberID, validation.Required),
		validation.Field(&in.Title, validation.Required, validation.Length(3, 160)),
		validation.Field(&in.Description, validation.Required, validation.Length(10, 2000)),
	))
}

// CreateReferral records a referral from fromMemberID to the target member.
// The target must be a different, active member.
func (s *ReferralService) CreateReferral(ctx context.Context, fromMemberID string, input CreateReferralInput) (domain.Referral, error) {
	log := slogx.FromContext(ctx)

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	// 1. Validate input.
	if err := input.validate(); err != nil {
		return domain.Referral{}, err
	}

	// 2. No self-referrals.
	if input.ToMemberID == fromMemberID {
		return domain.Referral{}, ErrSelfReferral
	}

	// 3. The target must exist and be active. Missing and inactive targets
	// get the same answer so the directory of former members stays private.
	target, err := s.Store.Members().GetMemberByID(ctx, input.ToMemberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("referral attempted to unknown member",
				slog.String("to_member_id", input.ToMemberID),
			)
			return domain.Referral{}, ErrMemberNotFound
		}
		log.Error("failed to fetch referral target", slog.Any("error", err))
		return domain.Referral{}, err
	}
	if !target.IsActive() {
		return domain.Referral{}, ErrMemberNotFound
	}

	// 4. Insert as pending.
	now := time.Now().UTC()
	referral := domain.Referral{
		ID:           idx.New().String(),
		FromMemberID: fromMemberID,
		ToMemberID:   input.ToMemberID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       domain.ReferralPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Referrals().CreateReferral(ctx, referral); err != nil {
		log.Error("failed to create referral", slog.Any("error", err))
		return domain.Referral{}, err
	}

	log.Info("referral created",
		slog.String("referral_id", referral.ID),
		slog.String("from_member_id", fromMemberID),
		slog.String("to_member_id", input.ToMemberID),
	)

	// 5. Re-read so the response carries both party summaries.
	return s.Store.Referrals().GetReferralByID(ctx, referral.ID)
}

// ListReferrals returns the referrals a member has sent and received.
func (s *ReferralService) ListReferrals(ctx context.Context, memberID string) (sent, received []domain.Referral, err error) {
	sent, err = s.Store.Referrals().ListReferralsFrom(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	received, err = s.Store.Referrals().ListReferralsTo(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

// UpdateStatus sets a referral's status. Only the sender or the recipient
// may do so; any of the four statuses may be set at any time.
func (s *ReferralService) UpdateStatus(ctx context.Context, memberID, referralID, status string) (domain.Referral, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the status value.
	if !domain.ValidReferralStatus(status) {
		return domain.Referral{}, ErrInvalidReferralState
	}

	// 2. Fetch the referral.
	referral, err := s.Store.Referrals().GetReferralByID(ctx, referralID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Referral{}, ErrReferralNotFound
		}
		log.Error("failed to fetch referral", slog.Any("error", err))
		return domain.Referral{}, err
	}

	// 3. Party check.
	if !referral.IsParty(memberID) {
		log.Warn("referral status change attempted by non-party",
			slog.String("referral_id", referralID),
			slog.String("member_id", memberID),
		)
		return domain.Referral{}, ErrNotReferralParty
	}

	// 4. Apply.
	if err := s.Store.Referrals().UpdateReferralStatus(ctx, referralID, status); err != nil {
		log.Error("failed to update referral status", slog.Any("error", err))
		return domain.Referral{}, err
	}

	log.Info("referral status updated",
		slog.String("referral_id", referralID),
		slog.String("status", status),
	)

	return s.Store.Referrals().GetReferralByID(ctx, referralID)
}
