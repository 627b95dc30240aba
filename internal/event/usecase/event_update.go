package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type EventUpdateInput struct {
	ID          int64     `validate:"required,gt=0"`
	Title       string    `validate:"required,min=3,max=200"`
	Description string    `validate:"omitempty,max=5000"`
	Language    string    `validate:"required,max=50"`
	Location    string    `validate:"required,max=200"`
	StartsAt    time.Time `validate:"required"`
	EndsAt      time.Time `validate:"required,gtfield=StartsAt"`
	Capacity    *int32    `validate:"omitempty,min=1"`
}

// EventUpdate rewrites an event. Only the owner can touch it; anyone else
// sees not found.
func (s *Usecase) EventUpdate(ctx context.Context, in EventUpdateInput) error {
	ctx, span := s.startSpan(ctx, "EventUpdate")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Language = strings.TrimSpace(in.Language)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.UpdateEvent(ctx, entity.PatchEvent{
		ID:          in.ID,
		CreatedBy:   clm.UserID,
		Title:       in.Title,
		Description: in.Description,
		Language:    in.Language,
		Location:    in.Location,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Capacity:    in.Capacity,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound("Event not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update event", "event_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
