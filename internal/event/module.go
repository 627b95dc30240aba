package event

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rakasatria/eventum/internal/event/inbound"
	"github.com/rakasatria/eventum/internal/event/outbound/db"
	"github.com/rakasatria/eventum/internal/event/usecase"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/router"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbEvent := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbEvent,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
