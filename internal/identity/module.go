package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rakasatria/eventum/internal/identity/inbound"
	"github.com/rakasatria/eventum/internal/identity/outbound/db"
	"github.com/rakasatria/eventum/internal/identity/outbound/mq"
	"github.com/rakasatria/eventum/internal/identity/usecase"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/hash"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
	"github.com/rakasatria/eventum/internal/pkg/limiter"
	"github.com/rakasatria/eventum/internal/pkg/messaging"
	"github.com/rakasatria/eventum/internal/pkg/otp"
	"github.com/rakasatria/eventum/internal/pkg/router"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Limiter    limiter.Limiter            `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

// New wires the identity module and returns its usecase so the scheduler can
// run the expired-OTP sweep.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		HMAC:          dep.HMAC,
		OTP:           dep.OTP,
		Limiter:       dep.Limiter,
		UID:           dep.UID,
		OID:           dep.OID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return uc, nil
}
