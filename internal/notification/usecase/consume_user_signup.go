package usecase

import (
	"context"
	"log/slog"
	"time"
)

type ConsumeUserSignupInput struct {
	UserID    int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	FullName  string `validate:"required"`
	Role      string `validate:"omitempty"`
	OTPCode   string `validate:"required,len=6,otp"`
	ExpiresAt int64  `validate:"required"`
}

func (s *Usecase) ConsumeUserSignup(ctx context.Context, in ConsumeUserSignupInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserSignup")
	defer span.End()

	// A malformed payload is dropped, not redelivered.
	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	s.sendOTPEmail(ctx, in.Email, in.FullName, in.OTPCode, time.Unix(in.ExpiresAt, 0))

	return nil
}
