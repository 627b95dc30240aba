package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/rakasatria/eventum/internal/event/entity"
)

// EnrollSeeker takes a spot in the event inside one transaction. The event
// row is locked so the capacity check and the enrollment write cannot
// interleave with a concurrent enroll; the unique (event_id, seeker_id)
// constraint backs the remaining race across canceled rows.
//
// Returns the enrollment ID, which is the existing row's when a canceled
// enrollment is re-activated. Policy outcomes surface as
// entity.ErrEventStarted, entity.ErrEventFull or entity.ErrAlreadyEnrolled;
// a missing event as goerror.ErrNotFound.
func (s *DB) EnrollSeeker(ctx context.Context, in entity.NewEnrollment) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "EnrollSeeker")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	var ev entity.EventWithStats
	err = tx.QueryRow(ctx, `
		SELECT starts_at, capacity FROM events WHERE id = @id FOR UPDATE`,
		pgx.NamedArgs{"id": in.EventID},
	).Scan(&ev.StartsAt, &ev.Capacity)
	if err != nil {
		return 0, s.mapError(err)
	}

	if !in.Now.Before(ev.StartsAt) {
		return 0, entity.ErrEventStarted
	}

	if err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM enrollments
		WHERE event_id = @event_id AND status = @status`,
		pgx.NamedArgs{
			"event_id": in.EventID,
			"status":   entity.EnrollmentStatusEnrolled,
		},
	).Scan(&ev.EnrolledCount); err != nil {
		return 0, s.mapError(err)
	}

	if ev.IsFull() {
		return 0, entity.ErrEventFull
	}

	var existingID int64
	var existingStatus entity.EnrollmentStatus
	err = tx.QueryRow(ctx, `
		SELECT id, status FROM enrollments
		WHERE event_id = @event_id AND seeker_id = @seeker_id`,
		pgx.NamedArgs{
			"event_id":  in.EventID,
			"seeker_id": in.SeekerID,
		},
	).Scan(&existingID, &existingStatus)

	enrollmentID := in.ID

	switch {
	case err == nil && existingStatus == entity.EnrollmentStatusEnrolled:
		return 0, entity.ErrAlreadyEnrolled

	case err == nil:
		enrollmentID = existingID
		// A canceled enrollment is re-activated instead of duplicated.
		if _, err = tx.Exec(ctx, `
			UPDATE enrollments SET status = @status, updated_at = now()
			WHERE id = @id`,
			pgx.NamedArgs{
				"id":     existingID,
				"status": entity.EnrollmentStatusEnrolled,
			},
		); err != nil {
			return 0, s.mapError(err)
		}

	case errors.Is(err, pgx.ErrNoRows):
		if _, err = tx.Exec(ctx, `
			INSERT INTO enrollments (id, event_id, seeker_id, status)
			VALUES (@id, @event_id, @seeker_id, @status)`,
			pgx.NamedArgs{
				"id":        in.ID,
				"event_id":  in.EventID,
				"seeker_id": in.SeekerID,
				"status":    entity.EnrollmentStatusEnrolled,
			},
		); err != nil {
			return 0, s.mapError(err)
		}

	default:
		return 0, s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, s.mapError(err)
	}

	return enrollmentID, nil
}
