package sqlite

import (
	"context"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
)

type intentionsRepo struct {
	db dbtx
}

const intentionColumns = `id, full_name, email, company, phone, notes, status, created_at, updated_at`

func scanIntention(row interface{ Scan(...any) error }) (domain.Intention, error) {
	var in domain.Intention
	err := row.Scan(
		&in.ID, &in.FullName, &in.Email, &in.Company, &in.Phone, &in.Notes,
		&in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	return in, err
}

func (r *intentionsRepo) CreateIntention(ctx context.Context, in domain.Intention) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO intentions (id, full_name, email, company, phone, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, in.ID, in.FullName, in.Email, in.Company, in.Phone, in.Notes, in.Status, in.CreatedAt, in.UpdatedAt)
	return mapConstraint(err)
}

func (r *intentionsRepo) GetIntentionByID(ctx context.Context, id string) (domain.Intention, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+intentionColumns+` FROM intentions WHERE id = ?;
	`, id)

	in, err := scanIntention(row)
	if err != nil {
		return domain.Intention{}, mapNotFound(err)
	}
	return in, nil
}

func (r *intentionsRepo) GetIntentionByEmail(ctx context.Context, email string) (domain.Intention, error) {
	// email column is COLLATE NOCASE, so plain equality matches any casing
	row := r.db.QueryRowContext(ctx, `
		SELECT `+intentionColumns+` FROM intentions WHERE email = ?;
	`, email)

	in, err := scanIntention(row)
	if err != nil {
		return domain.Intention{}, mapNotFound(err)
	}
	return in, nil
}

func (r *intentionsRepo) ListIntentions(ctx context.Context) ([]domain.Intention, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+intentionColumns+` FROM intentions ORDER BY created_at DESC, id DESC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Intention{}
	for rows.Next() {
		in, err := scanIntention(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *intentionsRepo) UpdateIntentionStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE intentions SET status = ?, updated_at = ? WHERE id = ?;
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
