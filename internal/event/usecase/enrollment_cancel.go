package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type CancelEnrollmentInput struct {
	EnrollmentID int64 `validate:"required,gt=0"`
}

// CancelEnrollment gives the seeker's spot back. Only an own active
// enrollment can be canceled; anything else is not found.
func (s *Usecase) CancelEnrollment(ctx context.Context, in CancelEnrollmentInput) error {
	ctx, span := s.startSpan(ctx, "CancelEnrollment")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.CancelEnrollment(ctx, in.EnrollmentID, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound("Enrollment not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo cancel enrollment", "enrollment_id", in.EnrollmentID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
