package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/event/entity"
)

// UpdateEvent rewrites an event owned by CreatedBy. A missing row or a
// foreign owner both surface as not found.
func (s *DB) UpdateEvent(ctx context.Context, ev entity.PatchEvent) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateEvent")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE events SET
			title = @title,
			description = @description,
			language = @language,
			location = @location,
			starts_at = @starts_at,
			ends_at = @ends_at,
			capacity = @capacity,
			updated_at = now()
		WHERE id = @id AND created_by = @created_by`,
		pgx.NamedArgs{
			"id":          ev.ID,
			"created_by":  ev.CreatedBy,
			"title":       ev.Title,
			"description": ev.Description,
			"language":    ev.Language,
			"location":    ev.Location,
			"starts_at":   ev.StartsAt,
			"ends_at":     ev.EndsAt,
			"capacity":    ev.Capacity,
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

// CancelEnrollment flips a seeker's own active enrollment to canceled.
func (s *DB) CancelEnrollment(ctx context.Context, id, seekerID int64) (err error) {
	ctx, span := s.startSpan(ctx, "CancelEnrollment")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE enrollments SET status = @canceled, updated_at = now()
		WHERE id = @id AND seeker_id = @seeker_id AND status = @enrolled`,
		pgx.NamedArgs{
			"id":        id,
			"seeker_id": seekerID,
			"enrolled":  entity.EnrollmentStatusEnrolled,
			"canceled":  entity.EnrollmentStatusCanceled,
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
