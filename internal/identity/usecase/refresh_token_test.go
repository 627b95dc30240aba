package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func validRefresh() *entity.UserRefreshToken {
	return &entity.UserRefreshToken{
		UserID: 7, UserEmail: "seeker@example.com",
		UserStatus: entity.UserStatusActive, Role: entity.RoleSeeker,
		RefreshID: 21, RefreshExpiresAt: testNow.Add(24 * time.Hour),
	}
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotates and issues new tokens", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{refresh: validRefresh()})

		out, err := fx.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old-token"})
		if err != nil {
			t.Fatalf("RefreshToken() error: %v", err)
		}
		if out.AccessToken == "" {
			t.Error("access token is empty")
		}
		if out.RefreshToken != "refresh-opaque-token" {
			t.Errorf("refresh token = %q", out.RefreshToken)
		}

		rot := fx.repo.rotatedRefresh
		if rot == nil {
			t.Fatal("refresh token was not rotated")
		}
		if rot.OldID != 21 {
			t.Errorf("rotated old id = %d, want 21", rot.OldID)
		}
		if rot.NewToken != "hmac:refresh-opaque-token" {
			t.Errorf("new stored token is not hashed: %q", rot.NewToken)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{refreshErr: goerror.ErrNotFound})

		_, err := fx.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "bogus"})
		assertBusinessCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("revoked token", func(t *testing.T) {
		data := validRefresh()
		data.RefreshRevoked = true
		fx := newFixture(t, &fakeRepoDB{refresh: data})

		_, err := fx.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old-token"})
		assertBusinessCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		data := validRefresh()
		data.RefreshExpiresAt = testNow.Add(-time.Minute)
		fx := newFixture(t, &fakeRepoDB{refresh: data})

		_, err := fx.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old-token"})
		assertBusinessCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("inactive account", func(t *testing.T) {
		data := validRefresh()
		data.UserStatus = entity.UserStatusInactive
		fx := newFixture(t, &fakeRepoDB{refresh: data})

		_, err := fx.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old-token"})
		assertBusinessCode(t, err, goerror.CodeForbidden)
	})

	t.Run("concurrent rotation loses", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{refresh: validRefresh(), rotateErr: goerror.ErrNotFound})

		_, err := fx.uc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "old-token"})
		assertBusinessCode(t, err, goerror.CodeUnauthorized)
	})
}
