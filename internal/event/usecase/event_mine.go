package usecase

import (
	"context"
	"log/slog"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/samber/lo"
)

type MyEventsOutput struct {
	Events []EventData
}

// MyEvents returns the facilitator's own events, newest first.
func (s *Usecase) MyEvents(ctx context.Context) (*MyEventsOutput, error) {
	ctx, span := s.startSpan(ctx, "MyEvents")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.repoDB.GetEventsByCreator(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get events by creator", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MyEventsOutput{
		Events: lo.Map(events, func(ev entity.EventWithStats, _ int) EventData {
			return toEventData(ev)
		}),
	}, nil
}
