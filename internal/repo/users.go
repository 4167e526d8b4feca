package repo

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Rax2004/Workforcepro/internal/models"
)

// ---------------- Users ----------------

const userColumns = `id, username, role, name, email, phone, created_at`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	var email, phone pgtype.Text
	if err := row.Scan(&u.ID, &u.Username, &u.Role, &u.Name, &email, &phone, &u.CreatedAt); err != nil {
		return models.User{}, err
	}
	u.Email = fromNullText(email)
	u.Phone = fromNullText(phone)
	return u, nil
}

func (p *pgRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	slog.DebugContext(ctx, "GetUserByID", "user_id", id)
	u, err := scanUser(p.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return u, err
}

func (p *pgRepo) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	slog.DebugContext(ctx, "GetUserByUsername", "username", username)
	u, err := scanUser(p.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return u, err
}

func (p *pgRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// ---------------- Local credentials ----------------

func (p *pgRepo) CreateLocalCredential(ctx context.Context, userID int64, username, phc string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO local_credentials (user_id, username, password_hash) VALUES ($1, $2, $3)`,
		userID, username, phc)
	return err
}

func (p *pgRepo) GetLocalCredentialByUsername(ctx context.Context, username string) (models.LocalCredential, models.User, error) {
	slog.DebugContext(ctx, "GetLocalCredentialByUsername", "username", username)
	var cred models.LocalCredential
	var u models.User
	var email, phone pgtype.Text
	err := p.pool.QueryRow(ctx, `
		SELECT c.user_id, c.username, c.password_hash,
		       u.id, u.username, u.role, u.name, u.email, u.phone, u.created_at
		FROM local_credentials c
		JOIN users u ON u.id = c.user_id
		WHERE c.username = $1`, username).
		Scan(&cred.UserID, &cred.Username, &cred.PasswordHash,
			&u.ID, &u.Username, &u.Role, &u.Name, &email, &phone, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LocalCredential{}, models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.LocalCredential{}, models.User{}, err
	}
	u.Email = fromNullText(email)
	u.Phone = fromNullText(phone)
	return cred, u, nil
}

func (p *pgRepo) UpdateLocalPasswordHash(ctx context.Context, userID int64, phc string) error {
	_, err := p.pool.Exec(ctx,
		`UPDATE local_credentials SET password_hash = $2 WHERE user_id = $1`, userID, phc)
	return err
}

// ---------------- Login events ----------------

func (p *pgRepo) recordLogin(ctx context.Context, username string, ip netip.Addr, success bool) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO login_events (username, ip, success) VALUES ($1, $2, $3)`,
		username, ip.String(), success)
	if err != nil {
		slog.ErrorContext(ctx, "recordLogin failed", "err", err)
	}
	return err
}

func (p *pgRepo) RecordLoginSuccess(ctx context.Context, username string, ip netip.Addr) error {
	return p.recordLogin(ctx, username, ip, true)
}

func (p *pgRepo) RecordLoginFailure(ctx context.Context, username string, ip netip.Addr) error {
	return p.recordLogin(ctx, username, ip, false)
}

// ---------------- TOTP ----------------

func (p *pgRepo) UserHasTOTP(ctx context.Context, userID int64) bool {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM totp_secrets WHERE user_id = $1)`, userID).Scan(&exists)
	return err == nil && exists
}

func (p *pgRepo) SetTOTPSecret(ctx context.Context, userID int64, secret string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO totp_secrets (user_id, secret) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET secret = EXCLUDED.secret`,
		userID, secret)
	return err
}

func (p *pgRepo) GetTOTPSecret(ctx context.Context, userID int64) (string, bool) {
	var secret string
	err := p.pool.QueryRow(ctx,
		`SELECT secret FROM totp_secrets WHERE user_id = $1`, userID).Scan(&secret)
	if err != nil {
		return "", false
	}
	return secret, true
}
