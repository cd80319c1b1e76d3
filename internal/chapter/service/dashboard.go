package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/openchapter/chapter/internal/chapter/store"
	"github.com/openchapter/chapter/pkg/slogx"
)

// DashboardService aggregates the admin overview counters.
type DashboardService struct {
	Store store.Store
}

// Dashboard is the admin overview: headline counters for the current
// calendar month plus the month boundary they were computed against.
type Dashboard struct {
	ActiveMembers      int64
	ReferralsThisMonth int64
	ThanksThisMonth    int64
	MonthStartsAt      time.Time
}

// monthStart returns midnight UTC on the first of t's month.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Metrics computes the dashboard counters.
func (s *DashboardService) Metrics(ctx context.Context) (Dashboard, error) {
	log := slogx.FromContext(ctx)

	since := monthStart(time.Now())

	active, err := s.Store.Members().CountActiveMembers(ctx)
	if err != nil {
		log.Error("failed to count active members", slog.Any("error", err))
		return Dashboard{}, err
	}

	referrals, err := s.Store.Referrals().CountReferralsSince(ctx, since)
	if err != nil {
		log.Error("failed to count referrals", slog.Any("error", err))
		return Dashboard{}, err
	}

	thanks, err := s.Store.Thanks().CountThanksSince(ctx, since)
	if err != nil {
		log.Error("failed to count thanks", slog.Any("error", err))
		return Dashboard{}, err
	}

	return Dashboard{
		ActiveMembers:      active,
		ReferralsThisMonth: referrals,
		ThanksThisMonth:    thanks,
		MonthStartsAt:      since,
	}, nil
}
