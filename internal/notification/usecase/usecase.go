package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/mail"
	"github.com/rakasatria/eventum/internal/pkg/validator"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/trace"
)

type repoEmail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoEmail repoEmail
	validator validator.Validator
	cfg       config.Config
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoEmail  repoEmail
	Validator  validator.Validator
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoEmail: dep.RepoEmail,
		validator: dep.Validator,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

// sendOTPEmail delivers the code with bounded retries. Delivery failure is
// logged and swallowed; the code was already issued and the user can always
// ask for a resend.
func (s *Usecase) sendOTPEmail(ctx context.Context, to, fullName, code string, expiresAt time.Time) {
	minutes := int(time.Until(expiresAt).Round(time.Minute).Minutes())
	if minutes < 1 {
		minutes = 1
	}

	msg := mail.Message{
		From:     s.cfg.GetString("mail.from"),
		To:       []string{to},
		Subject:  "Your Eventum verification code",
		TextBody: s.otpTextBody(fullName, code, minutes),
		HTMLBody: s.otpHTMLBody(fullName, code, minutes),
	}

	backoff := retry.NewFibonacci(500 * time.Millisecond)
	backoff = retry.WithMaxRetries(uint64(s.maxSendRetries()), backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if sErr := s.repoEmail.Send(ctx, msg); sErr != nil {
			return retry.RetryableError(sErr)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "to", to, "error", err)
		return
	}

	slog.InfoContext(ctx, "sent otp email", "to", to)
}

func (s *Usecase) maxSendRetries() int {
	if n := s.cfg.GetInt("modules.notification.max_send_retries"); n > 0 {
		return n
	}
	return 3
}

func (s *Usecase) otpTextBody(fullName, code string, minutes int) string {
	return fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"Your verification code is %s. It expires in %d minutes.\r\n\r\n"+
			"If you did not sign up for Eventum, you can safely ignore this email.\r\n",
		fullName, code, minutes)
}

func (s *Usecase) otpHTMLBody(fullName, code string, minutes int) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p>`+
			`<p>Your verification code is <strong style="font-size:1.4em">%s</strong>. `+
			`It expires in %d minutes.</p>`+
			`<p>If you did not sign up for Eventum, you can safely ignore this email.</p>`,
		fullName, code, minutes)
}
