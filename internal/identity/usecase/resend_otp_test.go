package usecase

import (
	"context"
	"testing"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func TestResendOTP(t *testing.T) {
	t.Run("replaces the otp and publishes the event", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser()})

		out, err := fx.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "seeker@example.com"})
		if err != nil {
			t.Fatalf("ResendOTP() error: %v", err)
		}

		if fx.repo.replacedOTP == nil {
			t.Fatal("otp was not replaced")
		}
		if fx.repo.replacedOTP.Code != "482913" {
			t.Errorf("otp code = %q", fx.repo.replacedOTP.Code)
		}
		if len(fx.msg.resends) != 1 {
			t.Fatalf("published %d resend events, want 1", len(fx.msg.resends))
		}
		if out.OTP != "" {
			t.Errorf("plain otp leaked in output while exposure is off: %q", out.OTP)
		}
	})

	t.Run("throttled", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser()})
		fx.lim.allowed = false

		_, err := fx.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "seeker@example.com"})
		gerr := assertBusinessCode(t, err, goerror.CodeTooManyRequest)
		if gerr.Msg() != "Too many OTP requests. Please try again later" {
			t.Errorf("msg = %q", gerr.Msg())
		}
		if fx.repo.replacedOTP != nil {
			t.Error("otp was replaced despite throttle")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})

		_, err := fx.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "nobody@example.com"})
		assertBusinessCode(t, err, goerror.CodeNotFound)
	})

	t.Run("already verified", func(t *testing.T) {
		user := unverifiedUser()
		user.Status = entity.UserStatusActive
		fx := newFixture(t, &fakeRepoDB{user: user})

		_, err := fx.uc.ResendOTP(context.Background(), ResendOTPInput{Email: "seeker@example.com"})
		assertBusinessCode(t, err, goerror.CodeConflict)
	})
}
