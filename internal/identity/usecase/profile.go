package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type ProfileOutput struct {
	UserID     int64
	Email      string
	FullName   string
	Role       string
	IsVerified bool
	Bio        string
}

// Profile returns the authenticated user's own view.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm, err := s.mustAuth(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.repoDB.GetUserProfile(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return nil, goerror.NewNotFound("Account not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user profile", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		UserID:     data.ID,
		Email:      data.Email,
		FullName:   data.FullName,
		Role:       data.Role.String(),
		IsVerified: data.IsVerified,
		Bio:        data.Bio,
	}, nil
}
