package sqlite

import (
	"context"
	"time"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, intention_id, token_hash, expires_at, used, created_at, updated_at`

func scanInvite(row interface{ Scan(...any) error }) (domain.InviteToken, error) {
	var inv domain.InviteToken
	err := row.Scan(
		&inv.ID, &inv.IntentionID, &inv.TokenHash, &inv.ExpiresAt, &inv.Used,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

func (r *invitesRepo) UpsertInviteToken(ctx context.Context, inv domain.InviteToken) error {
	// At most one invite per intention; re-approving replaces the token
	// and resets used, which kills any previously issued link.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invite_tokens (id, intention_id, token_hash, expires_at, used, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (intention_id) DO UPDATE SET
			token_hash = excluded.token_hash,
			expires_at = excluded.expires_at,
			used       = excluded.used,
			updated_at = excluded.updated_at;
	`, inv.ID, inv.IntentionID, inv.TokenHash, inv.ExpiresAt, inv.Used, inv.CreatedAt, inv.UpdatedAt)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByIntentionID(ctx context.Context, intentionID string) (domain.InviteToken, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM invite_tokens WHERE intention_id = ?;
	`, intentionID)

	inv, err := scanInvite(row)
	if err != nil {
		return domain.InviteToken{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.InviteToken, domain.Intention, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT t.id, t.intention_id, t.token_hash, t.expires_at, t.used, t.created_at, t.updated_at,
		       i.id, i.full_name, i.email, i.company, i.phone, i.notes, i.status, i.created_at, i.updated_at
		FROM invite_tokens t
		JOIN intentions i ON i.id = t.intention_id
		WHERE t.token_hash = ?;
	`, hash)

	var (
		inv domain.InviteToken
		in  domain.Intention
	)
	err := row.Scan(
		&inv.ID, &inv.IntentionID, &inv.TokenHash, &inv.ExpiresAt, &inv.Used, &inv.CreatedAt, &inv.UpdatedAt,
		&in.ID, &in.FullName, &in.Email, &in.Company, &in.Phone, &in.Notes, &in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return domain.InviteToken{}, domain.Intention{}, mapNotFound(err)
	}
	return inv, in, nil
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_tokens SET used = 1, updated_at = ? WHERE id = ?;
	`, time.Now().UTC(), id)
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
