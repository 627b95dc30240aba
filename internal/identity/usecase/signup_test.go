package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func TestSignup(t *testing.T) {
	t.Run("creates an unverified account with a fresh otp", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})

		out, err := fx.uc.Signup(context.Background(), SignupInput{
			Email:    "Seeker@Example.com",
			Password: "Secret123!",
			FullName: "Test Seeker",
			Role:     "seeker",
		})
		if err != nil {
			t.Fatalf("Signup() error: %v", err)
		}

		acc := fx.repo.createdAccount
		if acc == nil {
			t.Fatal("account was not persisted")
		}
		if acc.Email != "seeker@example.com" {
			t.Errorf("email not normalized: %q", acc.Email)
		}
		if acc.Status != entity.UserStatusUnverified {
			t.Errorf("status = %v, want Unverified", acc.Status)
		}
		if acc.Password != "bcrypt:Secret123!" {
			t.Errorf("password was not hashed: %q", acc.Password)
		}

		rec := fx.repo.createdOTP
		if rec == nil {
			t.Fatal("otp was not persisted")
		}
		if rec.Code != "482913" {
			t.Errorf("otp code = %q", rec.Code)
		}
		if want := testNow.Add(10 * time.Minute); !rec.ExpiresAt.Equal(want) {
			t.Errorf("otp expires at %v, want %v", rec.ExpiresAt, want)
		}

		if out.OTP != "" {
			t.Errorf("plain otp leaked in output while exposure is off: %q", out.OTP)
		}
		if len(fx.msg.signups) != 1 {
			t.Fatalf("published %d signup events, want 1", len(fx.msg.signups))
		}
		if fx.msg.signups[0].OTPCode != "482913" {
			t.Errorf("event otp code = %q", fx.msg.signups[0].OTPCode)
		}
	})

	t.Run("unknown role defaults to seeker", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})

		out, err := fx.uc.Signup(context.Background(), SignupInput{
			Email:    "seeker@example.com",
			Password: "Secret123!",
			FullName: "Test Seeker",
		})
		if err != nil {
			t.Fatalf("Signup() error: %v", err)
		}
		if out.Role != "seeker" {
			t.Errorf("role = %q, want seeker", out.Role)
		}
	})

	t.Run("verified duplicate email conflicts", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: &entity.UserCredentialInfo{
			ID: 7, Email: "seeker@example.com", Status: entity.UserStatusActive,
		}})

		_, err := fx.uc.Signup(context.Background(), SignupInput{
			Email:    "seeker@example.com",
			Password: "Secret123!",
			FullName: "Test Seeker",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeConflict)
		if gerr.Msg() != "Email already registered" {
			t.Errorf("msg = %q", gerr.Msg())
		}
	})

	t.Run("unverified duplicate email gets a distinct message", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: &entity.UserCredentialInfo{
			ID: 7, Email: "seeker@example.com", Status: entity.UserStatusUnverified,
		}})

		_, err := fx.uc.Signup(context.Background(), SignupInput{
			Email:    "seeker@example.com",
			Password: "Secret123!",
			FullName: "Test Seeker",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeConflict)
		if gerr.Msg() != "Email already registered but not verified" {
			t.Errorf("msg = %q", gerr.Msg())
		}
	})

	t.Run("invalid input is rejected before any repo call", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})

		_, err := fx.uc.Signup(context.Background(), SignupInput{
			Email:    "not-an-email",
			Password: "short",
			FullName: "x",
		})
		assertBusinessCode(t, err, goerror.CodeInvalidInput)
		if fx.repo.createdAccount != nil {
			t.Error("account was persisted despite invalid input")
		}
	})

	t.Run("publish failure does not fail the signup", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})
		fx.msg.err = context.DeadlineExceeded

		if _, err := fx.uc.Signup(context.Background(), SignupInput{
			Email:    "seeker@example.com",
			Password: "Secret123!",
			FullName: "Test Seeker",
		}); err != nil {
			t.Fatalf("Signup() error: %v", err)
		}
	})
}
