package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/samber/lo"
)

type EventEnrollmentsInput struct {
	EventID int64 `validate:"required,gt=0"`
}

type EnrolledSeekerData struct {
	EnrollmentID int64
	SeekerID     int64
	FullName     string
	Email        string
	EnrolledAt   time.Time
}

type EventEnrollmentsOutput struct {
	EventID     int64
	Enrollments []EnrolledSeekerData
}

// EventEnrollments lists the enrolled seekers of an owned event.
func (s *Usecase) EventEnrollments(ctx context.Context, in EventEnrollmentsInput) (*EventEnrollmentsOutput, error) {
	ctx, span := s.startSpan(ctx, "EventEnrollments")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ev, err := s.repoDB.GetEventByID(ctx, in.EventID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound("Event not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get event by id", "event_id", in.EventID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if ev.CreatedBy != clm.UserID {
		return nil, goerror.NewNotFound("Event not found")
	}

	enrollments, err := s.repoDB.GetEventEnrollments(ctx, in.EventID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get event enrollments", "event_id", in.EventID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EventEnrollmentsOutput{
		EventID: in.EventID,
		Enrollments: lo.Map(enrollments, func(en entity.EnrolledSeeker, _ int) EnrolledSeekerData {
			return EnrolledSeekerData(en)
		}),
	}, nil
}

type MyEnrollmentsInput struct {
	// When filters by event start: "upcoming", "past" or empty for all.
	When string `validate:"omitempty,oneof=upcoming past"`
}

type EnrollmentData struct {
	EnrollmentID  int64
	EventID       int64
	EventTitle    string
	EventLocation string
	EventStartsAt time.Time
	EventEndsAt   time.Time
	EnrolledAt    time.Time
}

type MyEnrollmentsOutput struct {
	Enrollments []EnrollmentData
}

// MyEnrollments returns the seeker's active enrollments, optionally split
// into upcoming and past by event start time.
func (s *Usecase) MyEnrollments(ctx context.Context, in MyEnrollmentsInput) (*MyEnrollmentsOutput, error) {
	ctx, span := s.startSpan(ctx, "MyEnrollments")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	var after, before time.Time
	switch in.When {
	case "upcoming":
		after = s.clock.Now()
	case "past":
		before = s.clock.Now()
	}

	enrollments, err := s.repoDB.GetSeekerEnrollments(ctx, clm.UserID, after, before)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get seeker enrollments", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MyEnrollmentsOutput{
		Enrollments: lo.Map(enrollments, func(en entity.SeekerEnrollment, _ int) EnrollmentData {
			return EnrollmentData(en)
		}),
	}, nil
}
