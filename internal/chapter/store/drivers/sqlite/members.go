package sqlite

import (
	"context"

	"github.com/openchapter/chapter/internal/chapter/domain"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `id, full_name, email, company, phone, password_hash, admin, status, created_at, updated_at`

func scanMember(row interface{ Scan(...any) error }) (domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.FullName, &m.Email, &m.Company, &m.Phone, &m.PasswordHash,
		&m.Admin, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO members (id, full_name, email, company, phone, password_hash, admin, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, m.ID, m.FullName, m.Email, m.Company, m.Phone, m.PasswordHash, m.Admin, m.Status, m.CreatedAt, m.UpdatedAt)
	return mapConstraint(err)
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM members WHERE id = ?;
	`, id)

	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM members WHERE email = ?;
	`, email)

	m, err := scanMember(row)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membersRepo) ListActiveMembers(ctx context.Context, excludeID string) ([]domain.MemberSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, full_name, company FROM members
		WHERE status = 'active' AND id != ?
		ORDER BY full_name, id;
	`, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MemberSummary{}
	for rows.Next() {
		var s domain.MemberSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.Company); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *membersRepo) CountActiveMembers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM members WHERE status = 'active';
	`).Scan(&n)
	return n, err
}

func (r *membersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members;`).Scan(&n)
	return n == 0, err
}
