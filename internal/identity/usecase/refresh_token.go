package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*RefreshTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	tokenHash, err := s.hmac.Hash(in.RefreshToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	data, err := s.repoDB.GetUserRefreshToken(ctx, string(tokenHash))
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Invalid refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	if data.RefreshRevoked || s.clock.Now().After(data.RefreshExpiresAt) {
		slog.WarnContext(ctx, "refresh token is revoked or expired", "user_id", data.UserID)
		return nil, goerror.NewBusiness("Invalid refresh token", goerror.CodeUnauthorized)
	}

	if data.UserStatus.Ensure() != entity.UserStatusActive {
		slog.WarnContext(ctx, "user account is not active", "user_id", data.UserID, "status", data.UserStatus.String())
		return nil, goerror.NewBusiness("Account is not active", goerror.CodeForbidden)
	}

	acToken, err := s.jwt.Generate(data.UserID, data.UserEmail, data.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", data.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	newToken := s.oid.Generate()
	newTokenHash, err := s.hmac.Hash(newToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token", "user_id", data.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.RotateRefreshToken(ctx, entity.RotateRefreshToken{
		NewID:        s.uid.Generate(),
		OldID:        data.RefreshID,
		UserID:       data.UserID,
		NewToken:     string(newTokenHash),
		NewExpiresAt: s.clock.Now().Add(s.cfg.GetDay("modules.identity.refresh_token_ttl_days")),
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Invalid refresh token", goerror.CodeUnauthorized)
		}
		slog.ErrorContext(ctx, "failed to repo rotate refresh token", "user_id", data.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RefreshTokenOutput{
		AccessToken:  acToken,
		RefreshToken: newToken,
	}, nil
}
