package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func unverifiedUser() *entity.UserCredentialInfo {
	return &entity.UserCredentialInfo{
		ID: 7, Email: "seeker@example.com", FullName: "Test Seeker",
		Status: entity.UserStatusUnverified, Role: entity.RoleSeeker,
	}
}

func activeOTP(attempts int16) *entity.EmailOTP {
	return &entity.EmailOTP{
		ID: 11, Email: "seeker@example.com", Code: "482913",
		Attempts: attempts, ExpiresAt: testNow.Add(5 * time.Minute),
	}
}

func TestVerifyEmail(t *testing.T) {
	t.Run("correct code activates the account", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser(), otpRec: activeOTP(0)})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "482913",
		})
		if err != nil {
			t.Fatalf("VerifyEmail() error: %v", err)
		}

		act := fx.repo.activated
		if act == nil {
			t.Fatal("user was not activated")
		}
		if act.UserID != 7 || act.OTPID != 11 {
			t.Errorf("activated %+v", act)
		}
		if act.NewStatus != entity.UserStatusActive {
			t.Errorf("new status = %v, want Active", act.NewStatus)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "nobody@example.com", OTP: "482913",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeNotFound)
		if gerr.Msg() != "Email not registered" {
			t.Errorf("msg = %q", gerr.Msg())
		}
	})

	t.Run("already verified", func(t *testing.T) {
		user := unverifiedUser()
		user.Status = entity.UserStatusActive
		fx := newFixture(t, &fakeRepoDB{user: user})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "482913",
		})
		assertBusinessCode(t, err, goerror.CodeConflict)
	})

	t.Run("no active otp", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser(), otpErr: goerror.ErrNotFound})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "482913",
		})
		assertBusinessCode(t, err, goerror.CodeNotFound)
	})

	t.Run("expired code wins even with attempts left", func(t *testing.T) {
		rec := activeOTP(0)
		rec.ExpiresAt = testNow.Add(-time.Second)
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser(), otpRec: rec})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "482913",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeGone)
		if gerr.Msg() != "OTP has expired" {
			t.Errorf("msg = %q", gerr.Msg())
		}
	})

	t.Run("exhausted attempts win over a correct code", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser(), otpRec: activeOTP(3)})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "482913",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeTooManyRequest)
		if gerr.Msg() != "Maximum verification attempts exceeded" {
			t.Errorf("msg = %q", gerr.Msg())
		}
		if fx.repo.activated != nil {
			t.Error("user was activated despite exhausted attempts")
		}
	})

	t.Run("mismatch persists the new attempt count", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser(), otpRec: activeOTP(1)})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "000000",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeInvalidInput)
		if gerr.Msg() != "Invalid OTP. 1 attempts remaining" {
			t.Errorf("msg = %q", gerr.Msg())
		}
		if fx.repo.updatedAttempts != 2 {
			t.Errorf("persisted attempts = %d, want 2", fx.repo.updatedAttempts)
		}
	})

	t.Run("malformed code never reaches the repo", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: unverifiedUser(), otpRec: activeOTP(0)})

		err := fx.uc.VerifyEmail(context.Background(), VerifyEmailInput{
			Email: "seeker@example.com", OTP: "12345",
		})
		assertBusinessCode(t, err, goerror.CodeInvalidInput)
		if fx.repo.updatedAttempts != 0 {
			t.Error("attempts were updated for malformed input")
		}
	})
}
