package app

import (
	"log/slog"
	"os"

	"github.com/rakasatria/eventum/internal/event"
	"github.com/rakasatria/eventum/internal/identity"
	"github.com/rakasatria/eventum/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		uc, err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			Limiter:    a.otpLimiter,
			UID:        a.uid,
			OID:        a.uuid,
			HMAC:       a.hmac,
			Bcrypt:     a.bcrypt,
			OTP:        a.otp,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		})
		if err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
		a.identityUC = uc
	}

	if a.config.GetBool("modules.event.enabled") {
		if err := event.New(event.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module event", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(a.ctx, notification.Dependency{
			Goroutine:   a.goroutine,
			Messaging:   a.messaging,
			Idempotency: a.idemp,
			Mail:        a.mail,
			Config:      a.config,
			Instrument:  a.ins,
			UUID:        a.uuid,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
