package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func activeUser() *entity.UserCredentialInfo {
	return &entity.UserCredentialInfo{
		ID: 7, Email: "seeker@example.com", FullName: "Test Seeker",
		Status: entity.UserStatusActive, Role: entity.RoleSeeker,
		Password: "bcrypt:Secret123!",
	}
}

func TestLogin(t *testing.T) {
	t.Run("issues access and refresh tokens", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{user: activeUser()})

		out, err := fx.uc.Login(context.Background(), LoginInput{
			Email: "seeker@example.com", Password: "Secret123!",
		})
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}
		if out.AccessToken == "" {
			t.Error("access token is empty")
		}
		if out.RefreshToken != "refresh-opaque-token" {
			t.Errorf("refresh token = %q", out.RefreshToken)
		}

		rt := fx.repo.createdRefresh
		if rt == nil {
			t.Fatal("refresh token was not persisted")
		}
		if rt.Token != "hmac:refresh-opaque-token" {
			t.Errorf("stored token is not hashed: %q", rt.Token)
		}
		if want := testNow.Add(30 * 24 * time.Hour); !rt.ExpiresAt.Equal(want) {
			t.Errorf("refresh expires at %v, want %v", rt.ExpiresAt, want)
		}
	})

	t.Run("unknown email and wrong password share a message", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{userErr: goerror.ErrNotFound})
		_, err := fx.uc.Login(context.Background(), LoginInput{
			Email: "nobody@example.com", Password: "Secret123!",
		})
		missing := assertBusinessCode(t, err, goerror.CodeUnauthorized)

		fx = newFixture(t, &fakeRepoDB{user: activeUser()})
		_, err = fx.uc.Login(context.Background(), LoginInput{
			Email: "seeker@example.com", Password: "WrongPass1!",
		})
		wrong := assertBusinessCode(t, err, goerror.CodeUnauthorized)

		if missing.Msg() != wrong.Msg() {
			t.Errorf("messages differ: %q vs %q", missing.Msg(), wrong.Msg())
		}
	})

	t.Run("unverified account is refused before the password check", func(t *testing.T) {
		user := activeUser()
		user.Status = entity.UserStatusUnverified
		fx := newFixture(t, &fakeRepoDB{user: user})

		// Correct password, still forbidden.
		_, err := fx.uc.Login(context.Background(), LoginInput{
			Email: "seeker@example.com", Password: "Secret123!",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeForbidden)
		if gerr.Msg() != "Email not verified. Please verify your email first" {
			t.Errorf("msg = %q", gerr.Msg())
		}

		// Wrong password gives the same verification error, not a
		// credentials error.
		_, err = fx.uc.Login(context.Background(), LoginInput{
			Email: "seeker@example.com", Password: "WrongPass1!",
		})
		assertBusinessCode(t, err, goerror.CodeForbidden)
	})

	t.Run("inactive account is refused", func(t *testing.T) {
		user := activeUser()
		user.Status = entity.UserStatusInactive
		fx := newFixture(t, &fakeRepoDB{user: user})

		_, err := fx.uc.Login(context.Background(), LoginInput{
			Email: "seeker@example.com", Password: "Secret123!",
		})
		gerr := assertBusinessCode(t, err, goerror.CodeForbidden)
		if gerr.Msg() != "Account is not active" {
			t.Errorf("msg = %q", gerr.Msg())
		}
	})
}
