package usecase

import (
	"context"
	"testing"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

func TestProfile(t *testing.T) {
	t.Run("returns the caller's profile", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{profile: &entity.UserProfileInfo{
			ID: 7, Email: "seeker@example.com", FullName: "Test Seeker",
			Role: entity.RoleSeeker, IsVerified: true, Bio: "hello",
		}})

		out, err := fx.uc.Profile(authedContext(7, "seeker"))
		if err != nil {
			t.Fatalf("Profile() error: %v", err)
		}
		if out.UserID != 7 || out.Role != "seeker" || !out.IsVerified {
			t.Errorf("unexpected profile %+v", out)
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		fx := newFixture(t, &fakeRepoDB{})

		_, err := fx.uc.Profile(context.Background())
		assertBusinessCode(t, err, goerror.CodeUnauthorized)
	})
}

func TestSweepExpiredOTPs(t *testing.T) {
	fx := newFixture(t, &fakeRepoDB{sweepCount: 4})

	count, err := fx.uc.SweepExpiredOTPs(context.Background())
	if err != nil {
		t.Fatalf("SweepExpiredOTPs() error: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
}
