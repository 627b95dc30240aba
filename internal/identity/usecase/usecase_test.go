package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/clock"
	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
	"github.com/rakasatria/eventum/internal/pkg/validator"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type fakeRepoDB struct {
	user    *entity.UserCredentialInfo
	userErr error

	profile    *entity.UserProfileInfo
	profileErr error

	otpRec *entity.EmailOTP
	otpErr error

	refresh    *entity.UserRefreshToken
	refreshErr error

	createAccountErr error
	rotateErr        error
	sweepCount       int64

	createdAccount  *entity.NewAccount
	createdOTP      *entity.CreateEmailOTP
	replacedOTP     *entity.CreateEmailOTP
	createdRefresh  *entity.CreateRefreshToken
	rotatedRefresh  *entity.RotateRefreshToken
	updatedAttempts int16
	activated       *entity.ActivateUser
}

func (f *fakeRepoDB) GetUserByEmail(context.Context, string) (*entity.UserCredentialInfo, error) {
	return f.user, f.userErr
}

func (f *fakeRepoDB) GetUserProfile(context.Context, int64) (*entity.UserProfileInfo, error) {
	return f.profile, f.profileErr
}

func (f *fakeRepoDB) GetActiveOTPByEmail(context.Context, string) (*entity.EmailOTP, error) {
	return f.otpRec, f.otpErr
}

func (f *fakeRepoDB) GetUserRefreshToken(context.Context, string) (*entity.UserRefreshToken, error) {
	return f.refresh, f.refreshErr
}

func (f *fakeRepoDB) CreateAccount(_ context.Context, acc entity.NewAccount, otp entity.CreateEmailOTP) error {
	f.createdAccount = &acc
	f.createdOTP = &otp
	return f.createAccountErr
}

func (f *fakeRepoDB) CreateRefreshToken(_ context.Context, rt entity.CreateRefreshToken) error {
	f.createdRefresh = &rt
	return nil
}

func (f *fakeRepoDB) ReplaceEmailOTP(_ context.Context, otp entity.CreateEmailOTP) error {
	f.replacedOTP = &otp
	return nil
}

func (f *fakeRepoDB) UpdateOTPAttempts(_ context.Context, _ int64, attempts int16) error {
	f.updatedAttempts = attempts
	return nil
}

func (f *fakeRepoDB) ActivateUser(_ context.Context, in entity.ActivateUser) error {
	f.activated = &in
	return nil
}

func (f *fakeRepoDB) RotateRefreshToken(_ context.Context, in entity.RotateRefreshToken) error {
	f.rotatedRefresh = &in
	return f.rotateErr
}

func (f *fakeRepoDB) SweepExpiredOTPs(context.Context, time.Time) (int64, error) {
	return f.sweepCount, nil
}

type fakeMessaging struct {
	signups []UserSignupEvent
	resends []OTPResendEvent
	err     error
}

func (f *fakeMessaging) PublishUserSignup(_ context.Context, msg UserSignupEvent) error {
	f.signups = append(f.signups, msg)
	return f.err
}

func (f *fakeMessaging) PublishOTPResend(_ context.Context, msg OTPResendEvent) error {
	f.resends = append(f.resends, msg)
	return f.err
}

type fakeLimiter struct {
	allowed bool
	err     error
}

func (f *fakeLimiter) Allow(context.Context, string) (bool, error) {
	return f.allowed, f.err
}

// fakeHash is a reversible stand-in so assertions can see the plaintext.
type fakeHash struct{ prefix string }

func (f fakeHash) Hash(plaintext string) ([]byte, error) {
	return []byte(f.prefix + plaintext), nil
}

func (f fakeHash) Verify(hashed, plaintext string) bool {
	return hashed == f.prefix+plaintext
}

type fixedOTP struct{ code string }

func (f fixedOTP) Generate() (string, error) { return f.code, nil }

type seqNumberID struct{ next int64 }

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type fixedStringID struct{ id string }

func (f fixedStringID) Generate() string { return f.id }

const testConfigYAML = `
modules:
  identity:
    otp_ttl_minutes: 10
    refresh_token_ttl_days: 30
    expose_otp: false
`

type usecaseFixture struct {
	uc   *Usecase
	repo *fakeRepoDB
	msg  *fakeMessaging
	lim  *fakeLimiter
}

func newFixture(t *testing.T, repo *fakeRepoDB) *usecaseFixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}

	msg := &fakeMessaging{}
	lim := &fakeLimiter{allowed: true}
	clk := clock.Fixed{At: testNow}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Validator:     v10,
		Config:        cfg,
		Bcrypt:        fakeHash{prefix: "bcrypt:"},
		HMAC:          fakeHash{prefix: "hmac:"},
		OTP:           fixedOTP{code: "482913"},
		Limiter:       lim,
		UID:           &seqNumberID{},
		OID:           fixedStringID{id: "refresh-opaque-token"},
		Clock:         clk,
		JWT:           jwt.NewSymmetric("test-secret", "eventum", 15*time.Minute, clk),
		Instrument:    instrument.NewNoop(),
	})

	return &usecaseFixture{uc: uc, repo: repo, msg: msg, lim: lim}
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
