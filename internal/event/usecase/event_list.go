package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/samber/lo"
)

type EventListInput struct {
	Search   string `validate:"omitempty,max=200"`
	Location string `validate:"omitempty,max=200"`
	Language string `validate:"omitempty,max=50"`
	OrderBy  string `validate:"omitempty,oneof=starts_at created_at title"`
	Page     int32  `validate:"omitempty,min=1"`
	Size     int32  `validate:"omitempty,min=1"`
}

type EventData struct {
	ID          int64
	Title       string
	Description string
	Language    string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    *int32
	Available   *int64
	CreatedBy   int64
	CreatedAt   time.Time
}

type EventListOutput struct {
	Events []EventData
	Total  int64
	Page   int32
	Size   int32
}

func toEventData(ev entity.EventWithStats) EventData {
	return EventData{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Language:    ev.Language,
		Location:    ev.Location,
		StartsAt:    ev.StartsAt,
		EndsAt:      ev.EndsAt,
		Capacity:    ev.Capacity,
		Available:   ev.AvailableSpots(),
		CreatedBy:   ev.CreatedBy,
		CreatedAt:   ev.CreatedAt,
	}
}

// EventList returns upcoming events matching the filter, paginated.
func (s *Usecase) EventList(ctx context.Context, in EventListInput) (*EventListOutput, error) {
	ctx, span := s.startSpan(ctx, "EventList")
	defer span.End()

	in.Search = strings.TrimSpace(in.Search)
	in.Location = strings.TrimSpace(in.Location)
	in.Language = strings.TrimSpace(in.Language)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	size := s.pageSize(in.Size)

	events, total, err := s.repoDB.GetEventList(ctx, entity.EventListFilter{
		Search:   in.Search,
		Location: in.Location,
		Language: in.Language,
		After:    s.clock.Now(),
		OrderBy:  entity.EventOrderFromString(in.OrderBy),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get event list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EventListOutput{
		Events: lo.Map(events, func(ev entity.EventWithStats, _ int) EventData {
			return toEventData(ev)
		}),
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}
