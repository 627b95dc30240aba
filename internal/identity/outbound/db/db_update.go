package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// UpdateOTPAttempts persists the failed-try counter after a mismatch.
func (s *DB) UpdateOTPAttempts(ctx context.Context, id int64, attempts int16) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateOTPAttempts")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE email_otps SET attempts = @attempts
		WHERE id = @id`,
		pgx.NamedArgs{
			"id":       id,
			"attempts": attempts,
		},
	)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return s.mapError(pgx.ErrNoRows)
	}

	return nil
}
