package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func sampleEvent(id int64, capacity *int32, enrolled int64) entity.EventWithStats {
	return entity.EventWithStats{
		Event: entity.Event{
			ID: id, Title: "Go Workshop", Language: "en", Location: "Jakarta",
			StartsAt: testNow.Add(24 * time.Hour), EndsAt: testNow.Add(26 * time.Hour),
			Capacity: capacity, CreatedBy: 3,
		},
		EnrolledCount: enrolled,
	}
}

func int32Ptr(v int32) *int32 { return &v }

func TestEventList(t *testing.T) {
	t.Run("filters from now and applies defaults", func(t *testing.T) {
		repo := &fakeRepoDB{list: []entity.EventWithStats{sampleEvent(1, int32Ptr(10), 4)}, listTotal: 1}
		uc := newUsecase(t, repo)

		out, err := uc.EventList(context.Background(), EventListInput{})
		if err != nil {
			t.Fatalf("EventList() error: %v", err)
		}

		if !repo.lastFilter.After.Equal(testNow) {
			t.Errorf("filter after = %v, want %v", repo.lastFilter.After, testNow)
		}
		if repo.lastFilter.Page != 1 || repo.lastFilter.Size != 20 {
			t.Errorf("pagination defaults page=%d size=%d", repo.lastFilter.Page, repo.lastFilter.Size)
		}
		if repo.lastFilter.OrderBy != entity.EventOrderStartsAt {
			t.Errorf("order = %v, want starts_at", repo.lastFilter.OrderBy)
		}

		if len(out.Events) != 1 || out.Total != 1 {
			t.Fatalf("events=%d total=%d", len(out.Events), out.Total)
		}
		if got := out.Events[0].Available; got == nil || *got != 6 {
			t.Errorf("available = %v, want 6", got)
		}
	})

	t.Run("page size is capped", func(t *testing.T) {
		repo := &fakeRepoDB{}
		uc := newUsecase(t, repo)

		if _, err := uc.EventList(context.Background(), EventListInput{Size: 500}); err != nil {
			t.Fatalf("EventList() error: %v", err)
		}
		if repo.lastFilter.Size != 100 {
			t.Errorf("size = %d, want capped at 100", repo.lastFilter.Size)
		}
	})

	t.Run("unlimited capacity has no available count", func(t *testing.T) {
		repo := &fakeRepoDB{list: []entity.EventWithStats{sampleEvent(1, nil, 400)}, listTotal: 1}
		uc := newUsecase(t, repo)

		out, err := uc.EventList(context.Background(), EventListInput{})
		if err != nil {
			t.Fatalf("EventList() error: %v", err)
		}
		if out.Events[0].Available != nil {
			t.Errorf("available = %v, want nil for unlimited capacity", *out.Events[0].Available)
		}
	})

	t.Run("unknown order field is rejected", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepoDB{})

		_, err := uc.EventList(context.Background(), EventListInput{OrderBy: "capacity; DROP TABLE events"})
		assertBusinessCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestEventCreate(t *testing.T) {
	validInput := func() EventCreateInput {
		return EventCreateInput{
			Title:    "Go Workshop",
			Language: "en",
			Location: "Jakarta",
			StartsAt: testNow.Add(24 * time.Hour),
			EndsAt:   testNow.Add(26 * time.Hour),
			Capacity: int32Ptr(30),
		}
	}

	t.Run("persists with the caller as owner", func(t *testing.T) {
		repo := &fakeRepoDB{}
		uc := newUsecase(t, repo)

		out, err := uc.EventCreate(authedContext(3, "facilitator"), validInput())
		if err != nil {
			t.Fatalf("EventCreate() error: %v", err)
		}
		if out.EventID == 0 {
			t.Error("event id is zero")
		}
		if repo.createdEvent.CreatedBy != 3 {
			t.Errorf("created_by = %d, want 3", repo.createdEvent.CreatedBy)
		}
	})

	t.Run("start in the past is rejected", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepoDB{})

		in := validInput()
		in.StartsAt = testNow.Add(-time.Hour)
		in.EndsAt = testNow.Add(time.Hour)

		_, err := uc.EventCreate(authedContext(3, "facilitator"), in)
		assertBusinessCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepoDB{})

		in := validInput()
		in.EndsAt = in.StartsAt.Add(-time.Hour)

		_, err := uc.EventCreate(authedContext(3, "facilitator"), in)
		assertBusinessCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestEventUpdateOwnership(t *testing.T) {
	// The repo scopes the update by owner, so a foreign event surfaces as
	// not found rather than forbidden.
	uc := newUsecase(t, &fakeRepoDB{updateErr: goerror.ErrNotFound})

	err := uc.EventUpdate(authedContext(4, "facilitator"), EventUpdateInput{
		ID: 5, Title: "Go Workshop", Language: "en", Location: "Jakarta",
		StartsAt: testNow.Add(24 * time.Hour), EndsAt: testNow.Add(26 * time.Hour),
	})
	gerr := assertBusinessCode(t, err, goerror.CodeNotFound)
	if gerr.Msg() != "Event not found" {
		t.Errorf("msg = %q", gerr.Msg())
	}
}

func TestEventEnrollmentsOwnership(t *testing.T) {
	ev := sampleEvent(5, int32Ptr(10), 2)
	uc := newUsecase(t, &fakeRepoDB{event: &ev})

	// Event exists but belongs to user 3; user 4 sees not found.
	_, err := uc.EventEnrollments(authedContext(4, "facilitator"), EventEnrollmentsInput{EventID: 5})
	gerr := assertBusinessCode(t, err, goerror.CodeNotFound)
	if gerr.Msg() != "Event not found" {
		t.Errorf("msg = %q", gerr.Msg())
	}

	// The owner gets the list.
	out, err := uc.EventEnrollments(authedContext(3, "facilitator"), EventEnrollmentsInput{EventID: 5})
	if err != nil {
		t.Fatalf("EventEnrollments() error: %v", err)
	}
	if out.EventID != 5 {
		t.Errorf("event id = %d", out.EventID)
	}
}

func TestMyEnrollmentsWindow(t *testing.T) {
	t.Run("upcoming bounds from now", func(t *testing.T) {
		repo := &fakeRepoDB{}
		uc := newUsecase(t, repo)

		if _, err := uc.MyEnrollments(authedContext(7, "seeker"), MyEnrollmentsInput{When: "upcoming"}); err != nil {
			t.Fatalf("MyEnrollments() error: %v", err)
		}
		if !repo.seekerAfter.Equal(testNow) || !repo.seekerBefore.IsZero() {
			t.Errorf("window after=%v before=%v", repo.seekerAfter, repo.seekerBefore)
		}
	})

	t.Run("past bounds to now", func(t *testing.T) {
		repo := &fakeRepoDB{}
		uc := newUsecase(t, repo)

		if _, err := uc.MyEnrollments(authedContext(7, "seeker"), MyEnrollmentsInput{When: "past"}); err != nil {
			t.Fatalf("MyEnrollments() error: %v", err)
		}
		if !repo.seekerAfter.IsZero() || !repo.seekerBefore.Equal(testNow) {
			t.Errorf("window after=%v before=%v", repo.seekerAfter, repo.seekerBefore)
		}
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepoDB{})

		_, err := uc.MyEnrollments(authedContext(7, "seeker"), MyEnrollmentsInput{When: "yesterday"})
		assertBusinessCode(t, err, goerror.CodeInvalidInput)
	})
}
