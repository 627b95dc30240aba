package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/identity/entity"
)

func (s *DB) CreateRefreshToken(ctx context.Context, rt entity.CreateRefreshToken) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRefreshToken")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at)
		VALUES (@id, @user_id, @token, @expires_at)`,
		pgx.NamedArgs{
			"id":         rt.ID,
			"user_id":    rt.UserID,
			"token":      rt.Token,
			"expires_at": rt.ExpiresAt,
		},
	)

	return s.mapError(err)
}
