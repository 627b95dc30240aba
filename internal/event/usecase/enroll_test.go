package usecase

import (
	"context"
	"testing"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func TestEnroll(t *testing.T) {
	t.Run("takes a spot for the authenticated seeker", func(t *testing.T) {
		repo := &fakeRepoDB{enrollID: 99}
		uc := newUsecase(t, repo)

		out, err := uc.Enroll(authedContext(7, "seeker"), EnrollInput{EventID: 5})
		if err != nil {
			t.Fatalf("Enroll() error: %v", err)
		}
		if out.EnrollmentID != 99 {
			t.Errorf("enrollment id = %d, want 99", out.EnrollmentID)
		}
		if repo.enrolled.SeekerID != 7 || repo.enrolled.EventID != 5 {
			t.Errorf("enrolled %+v", repo.enrolled)
		}
		if !repo.enrolled.Now.Equal(testNow) {
			t.Errorf("enrollment instant = %v, want %v", repo.enrolled.Now, testNow)
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepoDB{})

		_, err := uc.Enroll(context.Background(), EnrollInput{EventID: 5})
		assertBusinessCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("maps repo outcomes onto business errors", func(t *testing.T) {
		cases := []struct {
			name     string
			repoErr  error
			wantCode goerror.Code
			wantMsg  string
		}{
			{"missing event", goerror.ErrNotFound, goerror.CodeNotFound, "Event not found"},
			{"started event", entity.ErrEventStarted, goerror.CodeConflict, "Event has already started"},
			{"full event", entity.ErrEventFull, goerror.CodeConflict, "Event is full"},
			{"duplicate enrollment", entity.ErrAlreadyEnrolled, goerror.CodeConflict, "You are already enrolled in this event"},
			{"storage conflict", goerror.ErrConflict, goerror.CodeConflict, "You are already enrolled in this event"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := newUsecase(t, &fakeRepoDB{enrollErr: tc.repoErr})

				_, err := uc.Enroll(authedContext(7, "seeker"), EnrollInput{EventID: 5})
				gerr := assertBusinessCode(t, err, tc.wantCode)
				if gerr.Msg() != tc.wantMsg {
					t.Errorf("msg = %q, want %q", gerr.Msg(), tc.wantMsg)
				}
			})
		}
	})
}

func TestCancelEnrollment(t *testing.T) {
	t.Run("cancels an own enrollment", func(t *testing.T) {
		repo := &fakeRepoDB{}
		uc := newUsecase(t, repo)

		if err := uc.CancelEnrollment(authedContext(7, "seeker"), CancelEnrollmentInput{EnrollmentID: 99}); err != nil {
			t.Fatalf("CancelEnrollment() error: %v", err)
		}
		if repo.canceledID != 99 || repo.cancelSeeker != 7 {
			t.Errorf("canceled id=%d seeker=%d", repo.canceledID, repo.cancelSeeker)
		}
	})

	t.Run("someone else's enrollment is not found", func(t *testing.T) {
		uc := newUsecase(t, &fakeRepoDB{cancelErr: goerror.ErrNotFound})

		err := uc.CancelEnrollment(authedContext(7, "seeker"), CancelEnrollmentInput{EnrollmentID: 99})
		gerr := assertBusinessCode(t, err, goerror.CodeNotFound)
		if gerr.Msg() != "Enrollment not found" {
			t.Errorf("msg = %q", gerr.Msg())
		}
	})
}
