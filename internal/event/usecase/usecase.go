package usecase

import (
	"context"
	"time"

	"github.com/rakasatria/eventum/internal/event/entity"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetEventList(ctx context.Context, filter entity.EventListFilter) ([]entity.EventWithStats, int64, error)
	GetEventByID(ctx context.Context, id int64) (*entity.EventWithStats, error)
	GetEventsByCreator(ctx context.Context, creatorID int64) ([]entity.EventWithStats, error)
	GetEventEnrollments(ctx context.Context, eventID int64) ([]entity.EnrolledSeeker, error)
	GetSeekerEnrollments(ctx context.Context, seekerID int64, after, before time.Time) ([]entity.SeekerEnrollment, error)

	CreateEvent(ctx context.Context, ev entity.CreateEvent) error
	UpdateEvent(ctx context.Context, ev entity.PatchEvent) error
	DeleteEvent(ctx context.Context, id, createdBy int64) error

	EnrollSeeker(ctx context.Context, in entity.NewEnrollment) (int64, error)
	CancelEnrollment(ctx context.Context, id, seekerID int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("event.usecase").Start(ctx, name)
}

func (s *Usecase) mustAuth(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

func (s *Usecase) pageSize(size int32) int32 {
	if size <= 0 {
		return s.defaultPageSize()
	}
	if limit := s.cfg.GetInt32("modules.event.max_page_size"); limit > 0 && size > limit {
		return limit
	}
	return size
}

func (s *Usecase) defaultPageSize() int32 {
	if def := s.cfg.GetInt32("modules.event.default_page_size"); def > 0 {
		return def
	}
	return 20
}
