// Package app wires configuration, infrastructure clients and the
// domain modules into a runnable service.
package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/go-co-op/gocron/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	identityusecase "github.com/rakasatria/eventum/internal/identity/usecase"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/goroutine"
	"github.com/rakasatria/eventum/internal/pkg/hash"
	"github.com/rakasatria/eventum/internal/pkg/idempotency"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
	"github.com/rakasatria/eventum/internal/pkg/limiter"
	"github.com/rakasatria/eventum/internal/pkg/mail"
	"github.com/rakasatria/eventum/internal/pkg/messaging"
	"github.com/rakasatria/eventum/internal/pkg/otp"
	"github.com/rakasatria/eventum/internal/pkg/router"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn     *pgxpool.Pool
	cacheConn  *redis.Client
	idemp      idempotency.Idempotency
	otpLimiter limiter.Limiter
	mail       mail.Mail
	messaging  messaging.Messaging
	casbin     *casbin.Enforcer
	scheduler  gocron.Scheduler

	// modules
	identityUC *identityusecase.Usecase

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initScheduler()
	app.initClosers()

	return app
}
