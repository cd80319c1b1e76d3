package sqlite

import (
	"context"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
)

type thanksRepo struct {
	db dbtx
}

const thanksSelect = `
	SELECT th.id, th.from_member_id, th.to_member_id, th.message, th.created_at,
	       f.full_name, f.company,
	       t.full_name, t.company
	FROM thanks th
	JOIN members f ON f.id = th.from_member_id
	JOIN members t ON t.id = th.to_member_id`

func (r *thanksRepo) CreateThanks(ctx context.Context, th domain.Thanks) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO thanks (id, from_member_id, to_member_id, message, created_at)
		VALUES (?, ?, ?, ?, ?);
	`, th.ID, th.FromMemberID, th.ToMemberID, th.Message, th.CreatedAt)
	return mapConstraint(err)
}

func (r *thanksRepo) listThanks(ctx context.Context, where string, arg any) ([]domain.Thanks, error) {
	rows, err := r.db.QueryContext(ctx, thanksSelect+where, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Thanks{}
	for rows.Next() {
		var th domain.Thanks
		err := rows.Scan(
			&th.ID, &th.FromMemberID, &th.ToMemberID, &th.Message, &th.CreatedAt,
			&th.FromMember.FullName, &th.FromMember.Company,
			&th.ToMember.FullName, &th.ToMember.Company,
		)
		if err != nil {
			return nil, err
		}
		th.FromMember.ID = th.FromMemberID
		th.ToMember.ID = th.ToMemberID
		out = append(out, th)
	}
	return out, rows.Err()
}

func (r *thanksRepo) ListThanksFrom(ctx context.Context, memberID string) ([]domain.Thanks, error) {
	return r.listThanks(ctx, ` WHERE th.from_member_id = ? ORDER BY th.created_at DESC, th.id DESC;`, memberID)
}

func (r *thanksRepo) ListThanksTo(ctx context.Context, memberID string) ([]domain.Thanks, error) {
	return r.listThanks(ctx, ` WHERE th.to_member_id = ? ORDER BY th.created_at DESC, th.id DESC;`, memberID)
}

func (r *thanksRepo) CountThanksSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM thanks WHERE created_at >= ?;
	`, t).Scan(&n)
	return n, err
}
