package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/identity/entity"
)

// CreateAccount persists the user, its credential, its role profile and the
// first email OTP in one transaction. The profile is constructed explicitly
// here rather than by any implicit hook on user creation.
func (s *DB) CreateAccount(ctx context.Context, acc entity.NewAccount, otp entity.CreateEmailOTP) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO users (id, email, full_name, status)
		VALUES (@id, @email, @full_name, @status)`,
		pgx.NamedArgs{
			"id":        acc.UserID,
			"email":     acc.Email,
			"full_name": acc.FullName,
			"status":    acc.Status,
		},
	); err != nil {
		return s.mapError(err)
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO user_credentials (user_id, password)
		VALUES (@user_id, @password)`,
		pgx.NamedArgs{
			"user_id":  acc.UserID,
			"password": acc.Password,
		},
	); err != nil {
		return s.mapError(err)
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO profiles (id, user_id, role, is_verified)
		VALUES (@id, @user_id, @role, FALSE)`,
		pgx.NamedArgs{
			"id":      acc.ProfileID,
			"user_id": acc.UserID,
			"role":    acc.Role,
		},
	); err != nil {
		return s.mapError(err)
	}

	if err = s.insertOTP(ctx, tx, otp); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

// ReplaceEmailOTP deletes every prior code for the email and inserts the new
// one, so after commit exactly one row exists for that email.
func (s *DB) ReplaceEmailOTP(ctx context.Context, otp entity.CreateEmailOTP) (err error) {
	ctx, span := s.startSpan(ctx, "ReplaceEmailOTP")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if err = s.insertOTP(ctx, tx, otp); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) insertOTP(ctx context.Context, tx pgx.Tx, otp entity.CreateEmailOTP) error {
	if _, err := tx.Exec(ctx, `
		DELETE FROM email_otps WHERE email = @email`,
		pgx.NamedArgs{"email": otp.Email},
	); err != nil {
		return s.mapError(err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO email_otps (id, email, code, attempts, expires_at)
		VALUES (@id, @email, @code, 0, @expires_at)`,
		pgx.NamedArgs{
			"id":         otp.ID,
			"email":      otp.Email,
			"code":       otp.Code,
			"expires_at": otp.ExpiresAt,
		},
	); err != nil {
		return s.mapError(err)
	}

	return nil
}

// ActivateUser consumes the verified OTP and flips the account to active and
// the profile to verified, all in one transaction.
func (s *DB) ActivateUser(ctx context.Context, in entity.ActivateUser) (err error) {
	ctx, span := s.startSpan(ctx, "ActivateUser")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM email_otps WHERE id = @id`,
		pgx.NamedArgs{"id": in.OTPID},
	); err != nil {
		return s.mapError(err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE users SET status = @new_status, updated_at = now()
		WHERE id = @id AND status = @old_status`,
		pgx.NamedArgs{
			"id":         in.UserID,
			"new_status": in.NewStatus,
			"old_status": in.OldStatus,
		},
	)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}

	if _, err = tx.Exec(ctx, `
		UPDATE profiles SET is_verified = TRUE
		WHERE user_id = @user_id`,
		pgx.NamedArgs{"user_id": in.UserID},
	); err != nil {
		return s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

// RotateRefreshToken revokes the presented token and records its successor.
func (s *DB) RotateRefreshToken(ctx context.Context, in entity.RotateRefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "RotateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at)
		VALUES (@id, @user_id, @token, @expires_at)`,
		pgx.NamedArgs{
			"id":         in.NewID,
			"user_id":    in.UserID,
			"token":      in.NewToken,
			"expires_at": in.NewExpiresAt,
		},
	); err != nil {
		return s.mapError(err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE, replaced_by_token_id = @new_id
		WHERE id = @old_id AND revoked = FALSE`,
		pgx.NamedArgs{
			"old_id": in.OldID,
			"new_id": in.NewID,
		},
	)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
