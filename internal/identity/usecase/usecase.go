package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/rakasatria/eventum/internal/pkg/hash"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
	"github.com/rakasatria/eventum/internal/pkg/limiter"
	"github.com/rakasatria/eventum/internal/pkg/otp"
	"github.com/rakasatria/eventum/internal/pkg/uid"
	"github.com/rakasatria/eventum/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserSignupEvent struct {
	UserID    int64
	Email     string
	FullName  string
	Role      string
	OTPCode   string
	ExpiresAt time.Time
}

type OTPResendEvent struct {
	UserID    int64
	Email     string
	FullName  string
	OTPCode   string
	ExpiresAt time.Time
}

type repoMessaging interface {
	PublishUserSignup(ctx context.Context, msg UserSignupEvent) error
	PublishOTPResend(ctx context.Context, msg OTPResendEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.UserCredentialInfo, error)
	GetUserProfile(ctx context.Context, userID int64) (*entity.UserProfileInfo, error)
	GetActiveOTPByEmail(ctx context.Context, email string) (*entity.EmailOTP, error)
	GetUserRefreshToken(ctx context.Context, tokenHash string) (*entity.UserRefreshToken, error)

	CreateAccount(ctx context.Context, acc entity.NewAccount, otp entity.CreateEmailOTP) error
	CreateRefreshToken(ctx context.Context, rt entity.CreateRefreshToken) error

	ReplaceEmailOTP(ctx context.Context, otp entity.CreateEmailOTP) error
	UpdateOTPAttempts(ctx context.Context, id int64, attempts int16) error
	ActivateUser(ctx context.Context, in entity.ActivateUser) error
	RotateRefreshToken(ctx context.Context, in entity.RotateRefreshToken) error

	SweepExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	hmac          hash.Hash
	otp           otp.Generator
	limiter       limiter.Limiter
	uid           uid.NumberID
	oid           uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	HMAC          hash.Hash
	OTP           otp.Generator
	Limiter       limiter.Limiter
	UID           uid.NumberID
	OID           uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		hmac:          dep.HMAC,
		otp:           dep.OTP,
		limiter:       dep.Limiter,
		uid:           dep.UID,
		oid:           dep.OID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) mustAuth(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

func (s *Usecase) otpTTL() time.Duration {
	if ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes"); ttl > 0 {
		return ttl
	}
	return entity.OTPDefaultTTL
}

// newOTP generates a fresh code for email with the configured validity
// window. The record replaces any prior code once persisted.
func (s *Usecase) newOTP(ctx context.Context, email string) (*entity.CreateEmailOTP, error) {
	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &entity.CreateEmailOTP{
		ID:        s.uid.Generate(),
		Email:     email,
		Code:      code,
		ExpiresAt: s.clock.Now().Add(s.otpTTL()),
	}, nil
}

// exposeOTP reports whether plain codes may be echoed in API responses.
// Meant for development and test environments only.
func (s *Usecase) exposeOTP() bool {
	return s.cfg.GetBool("modules.identity.expose_otp")
}
