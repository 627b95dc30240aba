package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/event/entity"
)

func (s *DB) CreateEvent(ctx context.Context, ev entity.CreateEvent) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEvent")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO events (id, title, description, language, location, starts_at, ends_at, capacity, created_by)
		VALUES (@id, @title, @description, @language, @location, @starts_at, @ends_at, @capacity, @created_by)`,
		pgx.NamedArgs{
			"id":          ev.ID,
			"title":       ev.Title,
			"description": ev.Description,
			"language":    ev.Language,
			"location":    ev.Location,
			"starts_at":   ev.StartsAt,
			"ends_at":     ev.EndsAt,
			"capacity":    ev.Capacity,
			"created_by":  ev.CreatedBy,
		},
	)

	return s.mapError(err)
}
