package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type EventCreateInput struct {
	Title       string    `validate:"required,min=3,max=200"`
	Description string    `validate:"omitempty,max=5000"`
	Language    string    `validate:"required,max=50"`
	Location    string    `validate:"required,max=200"`
	StartsAt    time.Time `validate:"required"`
	EndsAt      time.Time `validate:"required,gtfield=StartsAt"`
	Capacity    *int32    `validate:"omitempty,min=1"`
}

type EventCreateOutput struct {
	EventID int64
}

func (s *Usecase) EventCreate(ctx context.Context, in EventCreateInput) (*EventCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "EventCreate")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Language = strings.TrimSpace(in.Language)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.StartsAt.Before(s.clock.Now()) {
		return nil, goerror.NewInvalidInput(nil, "starts_at", "must be in the future")
	}

	ev := entity.CreateEvent{
		ID:          s.uid.Generate(),
		Title:       in.Title,
		Description: in.Description,
		Language:    in.Language,
		Location:    in.Location,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Capacity:    in.Capacity,
		CreatedBy:   clm.UserID,
	}

	if err := s.repoDB.CreateEvent(ctx, ev); err != nil {
		slog.ErrorContext(ctx, "failed to repo create event", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EventCreateOutput{EventID: ev.ID}, nil
}
