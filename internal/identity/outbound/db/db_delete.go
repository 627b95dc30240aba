package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// SweepExpiredOTPs removes every code past its expiry and reports how many
// rows went away. Safe to run repeatedly.
func (s *DB) SweepExpiredOTPs(ctx context.Context, now time.Time) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "SweepExpiredOTPs")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		DELETE FROM email_otps WHERE expires_at < @now`,
		pgx.NamedArgs{"now": now},
	)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}
