package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/rakasatria/eventum/internal/identity/entity"
	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

type ResendOTPInput struct {
	Email string `validate:"required,email"`
}

type ResendOTPOutput struct {
	Email     string
	ExpiresAt time.Time

	// OTP carries the plain code only when exposure is enabled in config.
	OTP string
}

func (s *Usecase) ResendOTP(ctx context.Context, in ResendOTPInput) (*ResendOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "ResendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	allowed, err := s.limiter.Allow(ctx, "otp_resend:"+in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check resend limit", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !allowed {
		return nil, goerror.NewBusiness("Too many OTP requests. Please try again later", goerror.CodeTooManyRequest)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, goerror.NewNotFound("Email not registered")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if user.Status != entity.UserStatusUnverified {
		return nil, goerror.NewBusiness("Email already verified", goerror.CodeConflict)
	}

	newOTP, err := s.newOTP(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.ReplaceEmailOTP(ctx, *newOTP); err != nil {
		slog.ErrorContext(ctx, "failed to repo replace email otp", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOTPResend(ctx, OTPResendEvent{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		OTPCode:   newOTP.Code,
		ExpiresAt: newOTP.ExpiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp resend", "user_id", user.ID, "error", err)
	}

	out := &ResendOTPOutput{
		Email:     user.Email,
		ExpiresAt: newOTP.ExpiresAt,
	}
	if s.exposeOTP() {
		out.OTP = newOTP.Code
	}

	return out, nil
}
