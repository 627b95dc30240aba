package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type EventDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

// EventDelete removes an owned event and its enrollments.
func (s *Usecase) EventDelete(ctx context.Context, in EventDeleteInput) error {
	ctx, span := s.startSpan(ctx, "EventDelete")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.DeleteEvent(ctx, in.ID, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound("Event not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete event", "event_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
