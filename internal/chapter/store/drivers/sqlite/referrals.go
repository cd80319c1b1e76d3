package sqlite

import (
	"context"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
)

type referralsRepo struct {
	db dbtx
}

// referralSelect joins both parties so listings carry name and company
// without a second round trip.
const referralSelect = `
	SELECT r.id, r.from_member_id, r.to_member_id, r.title, r.description, r.status,
	       r.created_at, r.updated_at,
	       f.full_name, f.company,
	       t.full_name, t.company
	FROM referrals r
	JOIN members f ON f.id = r.from_member_id
	JOIN members t ON t.id = r.to_member_id`

func scanReferral(row interface{ Scan(...any) error }) (domain.Referral, error) {
	var r domain.Referral
	err := row.Scan(
		&r.ID, &r.FromMemberID, &r.ToMemberID, &r.Title, &r.Description, &r.Status,
		&r.CreatedAt, &r.UpdatedAt,
		&r.FromMember.FullName, &r.FromMember.Company,
		&r.ToMember.FullName, &r.ToMember.Company,
	)
	r.FromMember.ID = r.FromMemberID
	r.ToMember.ID = r.ToMemberID
	return r, err
}

func (r *referralsRepo) CreateReferral(ctx context.Context, ref domain.Referral) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO referrals (id, from_member_id, to_member_id, title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, ref.ID, ref.FromMemberID, ref.ToMemberID, ref.Title, ref.Description, ref.Status, ref.CreatedAt, ref.UpdatedAt)
	return mapConstraint(err)
}

func (r *referralsRepo) GetReferralByID(ctx context.Context, id string) (domain.Referral, error) {
	row := r.db.QueryRowContext(ctx, referralSelect+` WHERE r.id = ?;`, id)

	ref, err := scanReferral(row)
	if err != nil {
		return domain.Referral{}, mapNotFound(err)
	}
	return ref, nil
}

func (r *referralsRepo) listReferrals(ctx context.Context, where string, arg any) ([]domain.Referral, error) {
	rows, err := r.db.QueryContext(ctx, referralSelect+where, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Referral{}
	for rows.Next() {
		ref, err := scanReferral(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (r *referralsRepo) ListReferralsFrom(ctx context.Context, memberID string) ([]domain.Referral, error) {
	return r.listReferrals(ctx, ` WHERE r.from_member_id = ? ORDER BY r.created_at DESC, r.id DESC;`, memberID)
}

func (r *referralsRepo) ListReferralsTo(ctx context.Context, memberID string) ([]domain.Referral, error) {
	return r.listReferrals(ctx, ` WHERE r.to_member_id = ? ORDER BY r.created_at DESC, r.id DESC;`, memberID)
}

func (r *referralsRepo) UpdateReferralStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE referrals SET status = ?, updated_at = ? WHERE id = ?;
	`, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *referralsRepo) CountReferralsSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM referrals WHERE created_at >= ?;
	`, t).Scan(&n)
	return n, err
}
