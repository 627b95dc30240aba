package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/pkg/config"
	"github.com/rakasatria/eventum/internal/pkg/instrument"
	"github.com/rakasatria/eventum/internal/pkg/mail"
	"github.com/rakasatria/eventum/internal/pkg/validator"
)

type fakeEmail struct {
	sent     []mail.Message
	failures int
}

func (f *fakeEmail) Send(_ context.Context, msg mail.Message) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp: connection reset")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newNotificationUsecase(t *testing.T, repo *fakeEmail) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
mail:
  from: no-reply@eventum.dev
modules:
  notification:
    max_send_retries: 3
`))
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}

	return New(Dependency{
		RepoEmail:  repo,
		Validator:  v10,
		Config:     cfg,
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeUserSignup(t *testing.T) {
	t.Run("sends the otp email", func(t *testing.T) {
		repo := &fakeEmail{}
		uc := newNotificationUsecase(t, repo)

		err := uc.ConsumeUserSignup(context.Background(), ConsumeUserSignupInput{
			UserID:    7,
			Email:     "seeker@example.com",
			FullName:  "Test Seeker",
			Role:      "seeker",
			OTPCode:   "482913",
			ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
		})
		if err != nil {
			t.Fatalf("ConsumeUserSignup() error: %v", err)
		}

		if len(repo.sent) != 1 {
			t.Fatalf("sent %d emails, want 1", len(repo.sent))
		}
		msg := repo.sent[0]
		if msg.To[0] != "seeker@example.com" {
			t.Errorf("to = %v", msg.To)
		}
		if msg.From != "no-reply@eventum.dev" {
			t.Errorf("from = %q", msg.From)
		}
		if !strings.Contains(msg.TextBody, "482913") {
			t.Error("text body does not contain the code")
		}
		if !strings.Contains(msg.HTMLBody, "482913") {
			t.Error("html body does not contain the code")
		}
	})

	t.Run("malformed payload is dropped without redelivery", func(t *testing.T) {
		repo := &fakeEmail{}
		uc := newNotificationUsecase(t, repo)

		err := uc.ConsumeUserSignup(context.Background(), ConsumeUserSignupInput{
			UserID:  7,
			Email:   "not-an-email",
			OTPCode: "12",
		})
		if err != nil {
			t.Fatalf("malformed payload returned %v, want nil", err)
		}
		if len(repo.sent) != 0 {
			t.Error("email sent for malformed payload")
		}
	})

	t.Run("transient send failures are retried", func(t *testing.T) {
		repo := &fakeEmail{failures: 2}
		uc := newNotificationUsecase(t, repo)

		err := uc.ConsumeUserSignup(context.Background(), ConsumeUserSignupInput{
			UserID:    7,
			Email:     "seeker@example.com",
			FullName:  "Test Seeker",
			OTPCode:   "482913",
			ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
		})
		if err != nil {
			t.Fatalf("ConsumeUserSignup() error: %v", err)
		}
		if len(repo.sent) != 1 {
			t.Fatalf("sent %d emails after retries, want 1", len(repo.sent))
		}
	})
}

func TestConsumeOTPResend(t *testing.T) {
	repo := &fakeEmail{}
	uc := newNotificationUsecase(t, repo)

	err := uc.ConsumeOTPResend(context.Background(), ConsumeOTPResendInput{
		UserID:    7,
		Email:     "seeker@example.com",
		FullName:  "Test Seeker",
		OTPCode:   "583921",
		ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("ConsumeOTPResend() error: %v", err)
	}
	if len(repo.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(repo.sent))
	}
}
