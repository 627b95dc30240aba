package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/identity/entity"
)

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.UserCredentialInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var out entity.UserCredentialInfo
	err = s.conn.QueryRow(ctx, `
		SELECT u.id, u.email, u.full_name, u.status, p.role, c.password
		FROM users u
		JOIN user_credentials c ON c.user_id = u.id
		JOIN profiles p ON p.user_id = u.id
		WHERE u.email = @email`,
		pgx.NamedArgs{"email": email},
	).Scan(&out.ID, &out.Email, &out.FullName, &out.Status, &out.Role, &out.Password)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

func (s *DB) GetUserProfile(ctx context.Context, userID int64) (_ *entity.UserProfileInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserProfile")
	defer func() { s.endSpan(span, err) }()

	var out entity.UserProfileInfo
	err = s.conn.QueryRow(ctx, `
		SELECT u.id, u.email, u.full_name, u.status, p.role, p.is_verified, p.bio
		FROM users u
		JOIN profiles p ON p.user_id = u.id
		WHERE u.id = @user_id`,
		pgx.NamedArgs{"user_id": userID},
	).Scan(&out.ID, &out.Email, &out.FullName, &out.Status, &out.Role, &out.IsVerified, &out.Bio)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

// GetActiveOTPByEmail returns the latest code for the email. Issuance purges
// priors, so in steady state there is at most one row to pick.
func (s *DB) GetActiveOTPByEmail(ctx context.Context, email string) (_ *entity.EmailOTP, err error) {
	ctx, span := s.startSpan(ctx, "GetActiveOTPByEmail")
	defer func() { s.endSpan(span, err) }()

	var out entity.EmailOTP
	err = s.conn.QueryRow(ctx, `
		SELECT id, email, code, attempts, expires_at, created_at
		FROM email_otps
		WHERE email = @email
		ORDER BY created_at DESC
		LIMIT 1`,
		pgx.NamedArgs{"email": email},
	).Scan(&out.ID, &out.Email, &out.Code, &out.Attempts, &out.ExpiresAt, &out.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

func (s *DB) GetUserRefreshToken(ctx context.Context, tokenHash string) (_ *entity.UserRefreshToken, err error) {
	ctx, span := s.startSpan(ctx, "GetUserRefreshToken")
	defer func() { s.endSpan(span, err) }()

	var out entity.UserRefreshToken
	err = s.conn.QueryRow(ctx, `
		SELECT u.id, u.email, u.status, p.role, r.id, r.revoked, r.expires_at
		FROM refresh_tokens r
		JOIN users u ON u.id = r.user_id
		JOIN profiles p ON p.user_id = u.id
		WHERE r.token = @token`,
		pgx.NamedArgs{"token": tokenHash},
	).Scan(
		&out.UserID, &out.UserEmail, &out.UserStatus, &out.Role,
		&out.RefreshID, &out.RefreshRevoked, &out.RefreshExpiresAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}
