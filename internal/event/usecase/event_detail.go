package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type EventDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) EventDetail(ctx context.Context, in EventDetailInput) (*EventData, error) {
	ctx, span := s.startSpan(ctx, "EventDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ev, err := s.repoDB.GetEventByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound("Event not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get event by id", "event_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := toEventData(*ev)
	return &out, nil
}
