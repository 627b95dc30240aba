package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DeleteEvent removes an event owned by createdBy together with its
// enrollments (cascaded by the schema).
func (s *DB) DeleteEvent(ctx context.Context, id, createdBy int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteEvent")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		DELETE FROM events WHERE id = @id AND created_by = @created_by`,
		pgx.NamedArgs{
			"id":         id,
			"created_by": createdBy,
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
