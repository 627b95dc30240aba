package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
	"github.com/rakasatria/eventum/internal/pkg/validator"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type fakeRepoDB struct {
	list      []entity.EventWithStats
	listTotal int64
	listErr   error

	lastFilter *entity.EventListFilter

	event    *entity.EventWithStats
	eventErr error

	mine    []entity.EventWithStats
	mineErr error

	enrollments    []entity.EnrolledSeeker
	enrollmentsErr error

	seekerEnrollments []entity.SeekerEnrollment
	seekerAfter       time.Time
	seekerBefore      time.Time

	createdEvent *entity.CreateEvent
	updatedEvent *entity.PatchEvent
	updateErr    error
	deleteErr    error

	enrolled     *entity.NewEnrollment
	enrollID     int64
	enrollErr    error
	canceledID   int64
	cancelSeeker int64
	cancelErr    error
}

func (f *fakeRepoDB) GetEventList(_ context.Context, filter entity.EventListFilter) ([]entity.EventWithStats, int64, error) {
	f.lastFilter = &filter
	return f.list, f.listTotal, f.listErr
}

func (f *fakeRepoDB) GetEventByID(context.Context, int64) (*entity.EventWithStats, error) {
	return f.event, f.eventErr
}

func (f *fakeRepoDB) GetEventsByCreator(context.Context, int64) ([]entity.EventWithStats, error) {
	return f.mine, f.mineErr
}

func (f *fakeRepoDB) GetEventEnrollments(context.Context, int64) ([]entity.EnrolledSeeker, error) {
	return f.enrollments, f.enrollmentsErr
}

func (f *fakeRepoDB) GetSeekerEnrollments(_ context.Context, _ int64, after, before time.Time) ([]entity.SeekerEnrollment, error) {
	f.seekerAfter = after
	f.seekerBefore = before
	return f.seekerEnrollments, nil
}

func (f *fakeRepoDB) CreateEvent(_ context.Context, ev entity.CreateEvent) error {
	f.createdEvent = &ev
	return nil
}

func (f *fakeRepoDB) UpdateEvent(_ context.Context, ev entity.PatchEvent) error {
	f.updatedEvent = &ev
	return f.updateErr
}

func (f *fakeRepoDB) DeleteEvent(context.Context, int64, int64) error {
	return f.deleteErr
}

func (f *fakeRepoDB) EnrollSeeker(_ context.Context, in entity.NewEnrollment) (int64, error) {
	f.enrolled = &in
	return f.enrollID, f.enrollErr
}

func (f *fakeRepoDB) CancelEnrollment(_ context.Context, id, seekerID int64) error {
	f.canceledID = id
	f.cancelSeeker = seekerID
	return f.cancelErr
}

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

const testConfigYAML = `
modules:
  event:
    default_page_size: 20
    max_page_size: 100
`

func newUsecase(t *testing.T, repo *fakeRepoDB) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		Config:     cfg,
		UID:        &seqNumberID{},
		Clock:      clock.Fixed{At: testNow},
		Instrument: instrument.NewNoop(),
	})
}

func authedContext(userID int64, role string) context.Context {
	return jwt.SetAuth(context.Background(), &jwt.Claims{
		UserID: userID, UserEmail: "user@example.com", Role: role,
	})
}

func assertBusinessCode(t *testing.T, err error, want goerror.Code) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error %v is not a *goerror.Error", err)
	}
	if gerr.Code() != want {
		t.Fatalf("code = %v, want %v (msg %q)", gerr.Code(), want, gerr.Msg())
	}
	return gerr
}
