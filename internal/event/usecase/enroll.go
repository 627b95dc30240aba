package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type EnrollInput struct {
	EventID int64 `validate:"required,gt=0"`
}

type EnrollOutput struct {
	EnrollmentID int64
	EventID      int64
}

// Enroll takes a spot in the event for the authenticated seeker. The repo
// runs the capacity check and the write in one transaction.
func (s *Usecase) Enroll(ctx context.Context, in EnrollInput) (*EnrollOutput, error) {
	ctx, span := s.startSpan(ctx, "Enroll")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	enr := entity.NewEnrollment{
		ID:       s.uid.Generate(),
		EventID:  in.EventID,
		SeekerID: clm.UserID,
		Now:      s.clock.Now(),
	}

	enrollmentID, err := s.repoDB.EnrollSeeker(ctx, enr)
	switch {
	case err == nil:

	case errors.Is(err, goerror.ErrNotFound):
		return nil, goerror.NewNotFound("Event not found")

	case errors.Is(err, entity.ErrEventStarted):
		return nil, goerror.NewBusiness("Event has already started", goerror.CodeConflict)

	case errors.Is(err, entity.ErrEventFull):
		return nil, goerror.NewBusiness("Event is full", goerror.CodeConflict)

	case errors.Is(err, entity.ErrAlreadyEnrolled), errors.Is(err, goerror.ErrConflict):
		return nil, goerror.NewBusiness("You are already enrolled in this event", goerror.CodeConflict)

	default:
		slog.ErrorContext(ctx, "failed to repo enroll seeker", "event_id", in.EventID, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EnrollOutput{
		EnrollmentID: enrollmentID,
		EventID:      enr.EventID,
	}, nil
}
