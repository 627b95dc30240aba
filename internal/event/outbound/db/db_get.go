package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/event/entity"
)

const eventColumns = `
	e.id, e.title, e.description, e.language, e.location,
	e.starts_at, e.ends_at, e.capacity, e.created_by, e.created_at, e.updated_at,
	(SELECT COUNT(*) FROM enrollments en WHERE en.event_id = e.id AND en.status = 1) AS enrolled_count`

func scanEventWithStats(row pgx.Row) (*entity.EventWithStats, error) {
	var out entity.EventWithStats
	err := row.Scan(
		&out.ID, &out.Title, &out.Description, &out.Language, &out.Location,
		&out.StartsAt, &out.EndsAt, &out.Capacity, &out.CreatedBy, &out.CreatedAt, &out.UpdatedAt,
		&out.EnrolledCount,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEventList returns upcoming events matching the filter plus the total
// count before pagination.
func (s *DB) GetEventList(ctx context.Context, filter entity.EventListFilter) (_ []entity.EventWithStats, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetEventList")
	defer func() { s.endSpan(span, err) }()

	conds := []string{"e.starts_at >= @after"}
	args := pgx.NamedArgs{
		"after":  filter.After,
		"size":   filter.Size,
		"offset": (filter.Page - 1) * filter.Size,
	}

	if filter.Search != "" {
		conds = append(conds, "(e.title ILIKE @search OR e.description ILIKE @search OR e.location ILIKE @search)")
		args["search"] = "%" + filter.Search + "%"
	}
	if filter.Location != "" {
		conds = append(conds, "e.location ILIKE @location")
		args["location"] = "%" + filter.Location + "%"
	}
	if filter.Language != "" {
		conds = append(conds, "e.language ILIKE @language")
		args["language"] = "%" + filter.Language + "%"
	}

	where := strings.Join(conds, " AND ")

	var total int64
	if err = s.conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM events e WHERE "+where, args,
	).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	// OrderBy comes from a closed enum, never from raw user input.
	query := fmt.Sprintf(`
		SELECT %s FROM events e
		WHERE %s
		ORDER BY e.%s
		LIMIT @size OFFSET @offset`, eventColumns, where, filter.OrderBy)

	rows, err := s.conn.Query(ctx, query, args)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	out := make([]entity.EventWithStats, 0)
	for rows.Next() {
		ev, sErr := scanEventWithStats(rows)
		if sErr != nil {
			err = sErr
			return nil, 0, s.mapError(err)
		}
		out = append(out, *ev)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return out, total, nil
}

func (s *DB) GetEventByID(ctx context.Context, id int64) (_ *entity.EventWithStats, err error) {
	ctx, span := s.startSpan(ctx, "GetEventByID")
	defer func() { s.endSpan(span, err) }()

	out, err := scanEventWithStats(s.conn.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM events e WHERE e.id = @id", eventColumns),
		pgx.NamedArgs{"id": id},
	))
	if err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

// GetEventsByCreator returns a facilitator's own events, newest first.
func (s *DB) GetEventsByCreator(ctx context.Context, creatorID int64) (_ []entity.EventWithStats, err error) {
	ctx, span := s.startSpan(ctx, "GetEventsByCreator")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx,
		fmt.Sprintf(`
			SELECT %s FROM events e
			WHERE e.created_by = @created_by
			ORDER BY e.created_at DESC`, eventColumns),
		pgx.NamedArgs{"created_by": creatorID},
	)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	out := make([]entity.EventWithStats, 0)
	for rows.Next() {
		ev, sErr := scanEventWithStats(rows)
		if sErr != nil {
			err = sErr
			return nil, s.mapError(err)
		}
		out = append(out, *ev)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

// GetEventEnrollments lists the active enrollments of one event with the
// seeker identity joined in.
func (s *DB) GetEventEnrollments(ctx context.Context, eventID int64) (_ []entity.EnrolledSeeker, err error) {
	ctx, span := s.startSpan(ctx, "GetEventEnrollments")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT en.id, u.id, u.full_name, u.email, en.created_at
		FROM enrollments en
		JOIN users u ON u.id = en.seeker_id
		WHERE en.event_id = @event_id AND en.status = @status
		ORDER BY en.created_at`,
		pgx.NamedArgs{
			"event_id": eventID,
			"status":   entity.EnrollmentStatusEnrolled,
		},
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.EnrolledSeeker])
	if err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) GetEnrollmentByID(ctx context.Context, id int64) (_ *entity.Enrollment, err error) {
	ctx, span := s.startSpan(ctx, "GetEnrollmentByID")
	defer func() { s.endSpan(span, err) }()

	var out entity.Enrollment
	err = s.conn.QueryRow(ctx, `
		SELECT id, event_id, seeker_id, status, created_at, updated_at
		FROM enrollments
		WHERE id = @id`,
		pgx.NamedArgs{"id": id},
	).Scan(&out.ID, &out.EventID, &out.SeekerID, &out.Status, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &out, nil
}

// GetSeekerEnrollments returns the seeker's active enrollments. Zero values
// of after/before mean no bound; the caller uses them for upcoming/past
// filtering.
func (s *DB) GetSeekerEnrollments(ctx context.Context, seekerID int64, after, before time.Time) (_ []entity.SeekerEnrollment, err error) {
	ctx, span := s.startSpan(ctx, "GetSeekerEnrollments")
	defer func() { s.endSpan(span, err) }()

	conds := []string{"en.seeker_id = @seeker_id", "en.status = @status"}
	args := pgx.NamedArgs{
		"seeker_id": seekerID,
		"status":    entity.EnrollmentStatusEnrolled,
	}
	if !after.IsZero() {
		conds = append(conds, "e.starts_at >= @after")
		args["after"] = after
	}
	if !before.IsZero() {
		conds = append(conds, "e.starts_at < @before")
		args["before"] = before
	}

	rows, err := s.conn.Query(ctx, `
		SELECT en.id, e.id, e.title, e.location, e.starts_at, e.ends_at, en.created_at
		FROM enrollments en
		JOIN events e ON e.id = en.event_id
		WHERE `+strings.Join(conds, " AND ")+`
		ORDER BY e.starts_at`,
		args,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.SeekerEnrollment])
	if err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}
