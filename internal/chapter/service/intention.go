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
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	ErrIntentionExists   = errors.New("an intention already exists for this email")
	ErrIntentionNotFound = errors.New("intention not found")
)

// IntentionService handles the public membership intake: anyone may submit
// an intention to join, admins review the queue.
type IntentionService struct {
	Store store.Store
}

type SubmitIntentionInput struct {
	FullName string
	Email    string
	Company  string
	Phone    string
	Notes    string
}

func (in SubmitIntentionInput) validate() error {
	return fieldErrors(validation.ValidateStruct(&in,
		validation.Field(&in.FullName, validation.Required, validation.Length(3, 160)),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Company, validation.Length(0, 160)),
		validation.Field(&in.Phone, validation.Length(0, 40)),
		validation.Field(&in.Notes, validation.Length(0, 2000)),
	))
}

// SubmitIntention records a new pending intention.
func (s *IntentionService) SubmitIntention(ctx context.Context, input SubmitIntentionInput) (domain.Intention, error) {
	log := slogx.FromContext(ctx)

	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Company = strings.TrimSpace(input.Company)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Notes = strings.TrimSpace(input.Notes)

	// 1. Validate input.
	if err := input.validate(); err != nil {
		return domain.Intention{}, err
	}

	// 2. Pre-check the email; the unique index is the authoritative guard.
	_, err := s.Store.Intentions().GetIntentionByEmail(ctx, input.Email)
	if err == nil {
		log.Warn("intention submitted with already-registered email")
		return domain.Intention{}, ErrIntentionExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check intention email", slog.Any("error", err))
		return domain.Intention{}, err
	}

	// 3. Insert as pending.
	now := time.Now().UTC()
	intention := domain.Intention{
		ID:        idx.New().String(),
		FullName:  input.FullName,
		Email:     input.Email,
		Company:   input.Company,
		Phone:     input.Phone,
		Notes:     input.Notes,
		Status:    domain.IntentionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Intentions().CreateIntention(ctx, intention); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Intention{}, ErrIntentionExists
		}
		log.Error("failed to create intention", slog.Any("error", err))
		return domain.Intention{}, err
	}

	log.Info("intention submitted",
		slog.String("intention_id", intention.ID),
	)

	return intention, nil
}

// ListIntentions returns the full review queue, newest first.
func (s *IntentionService) ListIntentions(ctx context.Context) ([]domain.Intention, error) {
	return s.Store.Intentions().ListIntentions(ctx)
}

// GetIntention returns a single intention by id.
func (s *IntentionService) GetIntention(ctx context.Context, id string) (domain.Intention, error) {
	intention, err := s.Store.Intentions().GetIntentionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Intention{}, ErrIntentionNotFound
		}
		return domain.Intention{}, err
	}
	return intention, nil
}
