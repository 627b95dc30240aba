package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type VerifyEmailInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,otp"`
}

func (s *Usecase) VerifyEmail(ctx context.Context, in VerifyEmailInput) error {
	ctx, span := s.startSpan(ctx, "VerifyEmail")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return goerror.NewNotFound("Email not registered")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if user.Status != entity.UserStatusUnverified {
		return goerror.NewBusiness("Email already verified", goerror.CodeConflict)
	}

	rec, err := s.repoDB.GetActiveOTPByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound("No active OTP for this email. Please request a new one")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get active otp", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	res := rec.Verify(in.OTP, s.clock.Now())
	switch res.Status {
	case entity.OTPExpired:
		return goerror.NewBusiness(res.Message(), goerror.CodeGone)

	case entity.OTPMaxAttemptsReached:
		return goerror.NewBusiness(res.Message(), goerror.CodeTooManyRequest)

	case entity.OTPMismatch:
		if err := s.repoDB.UpdateOTPAttempts(ctx, rec.ID, rec.Attempts); err != nil {
			slog.ErrorContext(ctx, "failed to repo update otp attempts", "otp_id", rec.ID, "error", err)
			return goerror.NewServer(err)
		}
		return goerror.NewBusiness(res.Message(), goerror.CodeInvalidInput)
	}

	if err := s.repoDB.ActivateUser(ctx, entity.ActivateUser{
		UserID:    user.ID,
		OTPID:     rec.ID,
		OldStatus: entity.UserStatusUnverified,
		NewStatus: entity.UserStatusActive,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo activate user", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
