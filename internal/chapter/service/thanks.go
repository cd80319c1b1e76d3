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

var ErrSelfThanks = errors.New("cannot thank yourself")

// ThanksService records public acknowledgements between members.
type ThanksService struct {
	Store store.Store
}

type GiveThanksInput struct {
	ToMemberID string
	Message    string
}

func (in GiveThanksInput) validate() error {
	return fieldErrors(validation.ValidateStruct(&in,
		validation.Field(&in.ToMemberID, validation.Required),
		validation.Field(&in.Message, validation.Required, validation.Length(3, 2000)),
	))
}

// GiveThanks records a thanks from fromMemberID to the target member.
func (s *ThanksService) GiveThanks(ctx context.Context, fromMemberID string, input GiveThanksInput) (domain.Thanks, error) {
	log := slogx.FromContext(ctx)

	input.Message = strings.TrimSpace(input.Message)

	// 1. Validate input.
	if err := input.validate(); err != nil {
		return domain.Thanks{}, err
	}

	// 2. No thanking yourself.
	if input.ToMemberID == fromMemberID {
		return domain.Thanks{}, ErrSelfThanks
	}

	// 3. The target must exist and be active.
	target, err := s.Store.Members().GetMemberByID(ctx, input.ToMemberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Thanks{}, ErrMemberNotFound
		}
		log.Error("failed to fetch thanks target", slog.Any("error", err))
		return domain.Thanks{}, err
	}
	if !target.IsActive() {
		return domain.Thanks{}, ErrMemberNotFound
	}

	sender, err := s.Store.Members().GetMemberByID(ctx, fromMemberID)
	if err != nil {
		log.Error("failed to fetch thanks sender", slog.Any("error", err))
		return domain.Thanks{}, err
	}

	// 4. Insert.
	thanks := domain.Thanks{
		ID:           idx.New().String(),
		FromMemberID: fromMemberID,
		ToMemberID:   input.ToMemberID,
		Message:      input.Message,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Thanks().CreateThanks(ctx, thanks); err != nil {
		log.Error("failed to create thanks", slog.Any("error", err))
		return domain.Thanks{}, err
	}

	log.Info("thanks given",
		slog.String("thanks_id", thanks.ID),
		slog.String("from_member_id", fromMemberID),
		slog.String("to_member_id", input.ToMemberID),
	)

	thanks.FromMember = sender.Summary()
	thanks.ToMember = target.Summary()
	return thanks, nil
}

// ListThanks returns the thanks a member has sent and received.
func (s *ThanksService) ListThanks(ctx context.Context, memberID string) (sent, received []domain.Thanks, err error) {
	sent, err = s.Store.Thanks().ListThanksFrom(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	received, err = s.Store.Thanks().ListThanksTo(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}
