package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/idx"
	"github.com/openchapter/chapter/pkg/slogx"
)

var ErrInvalidDecision = errors.New("decision must be approved or rejected")

// AdmissionService applies admin decisions to intentions. Approval mints a
// single-use invite token whose raw value is returned exactly once; only
// its fingerprint is stored.
type AdmissionService struct {
	Store store.Store
}

// DecisionResult is what an admin gets back after deciding an intention.
// InviteToken is set only when this call minted a fresh invite.
type DecisionResult struct {
	Intention       domain.Intention
	InviteToken     string
	InviteExpiresAt time.Time
}

// Decide moves an intention to approved or rejected.
//
// Deciding the same status twice is a no-op so admins can safely retry.
// Any transition into approved replaces the invite row with a fresh token,
// which invalidates whatever link was issued before.
func (s *AdmissionService) Decide(ctx context.Context, intentionID, decision string) (DecisionResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the decision value.
	if !domain.ValidDecision(decision) {
		return DecisionResult{}, ErrInvalidDecision
	}

	// 2. Fetch the intention.
	intention, err := s.Store.Intentions().GetIntentionByID(ctx, intentionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("decision attempted on unknown intention",
				slog.String("intention_id", intentionID),
			)
			return DecisionResult{}, ErrIntentionNotFound
		}
		log.Error("failed to fetch intention", slog.Any("error", err))
		return DecisionResult{}, err
	}

	// 3. Same status again is a no-op; return current state untouched.
	if intention.Status == decision {
		return DecisionResult{Intention: intention}, nil
	}

	// 4. Rejection is just a status change.
	if decision == domain.IntentionRejected {
		if err := s.Store.Intentions().UpdateIntentionStatus(ctx, intention.ID, decision); err != nil {
			log.Error("failed to reject intention", slog.Any("error", err))
			return DecisionResult{}, err
		}
		intention.Status = decision

		log.Info("intention rejected",
			slog.String("intention_id", intention.ID),
		)
		return DecisionResult{Intention: intention}, nil
	}

	// 5. Approval: generate the invite token up front.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return DecisionResult{}, err
	}

	now := time.Now().UTC()
	invite := domain.InviteToken{
		ID:          idx.New().String(),
		IntentionID: intention.ID,
		TokenHash:   cryptox.FingerprintToken(token),
		ExpiresAt:   now.Add(domain.InviteTokenTTL),
		Used:        false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 6. Status change and invite mint commit together or not at all.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Intentions().UpdateIntentionStatus(ctx, intention.ID, decision); err != nil {
			return err
		}
		return tx.Invites().UpsertInviteToken(ctx, invite)
	})
	if err != nil {
		log.Error("failed to approve intention",
			slog.String("intention_id", intention.ID),
			slog.Any("error", err),
		)
		return DecisionResult{}, err
	}
	intention.Status = decision

	log.Info("intention approved",
		slog.String("intention_id", intention.ID),
		slog.Time("invite_expires_at", invite.ExpiresAt),
	)

	// 7. The raw token leaves the service exactly once, here.
	return DecisionResult{
		Intention:       intention,
		InviteToken:     token,
		InviteExpiresAt: invite.ExpiresAt,
	}, nil
}
