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

type SignupInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=5,max=100,alphaspace"`
	Role     string `validate:"omitempty,oneof=seeker facilitator"`
}

type SignupOutput struct {
	UserID    int64
	Email     string
	Role      string
	ExpiresAt time.Time

	// OTP carries the plain code only when exposure is enabled in config.
	OTP string
}

func (s *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	role := entity.RoleFromString(in.Role)
	if role.IsUnknown() {
		role = entity.RoleSeeker
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		if user.Status == entity.UserStatusUnverified {
			return nil, goerror.NewBusiness("Email already registered but not verified", goerror.CodeConflict)
		}
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newOTP, err := s.newOTP(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	acc := entity.NewAccount{
		UserID:    s.uid.Generate(),
		ProfileID: s.uid.Generate(),
		Email:     in.Email,
		FullName:  in.FullName,
		Password:  string(hashedPassword),
		Role:      role,
		Status:    entity.UserStatusUnverified,
	}

	if err := s.repoDB.CreateAccount(ctx, acc, *newOTP); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create account", "email", acc.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserSignup(ctx, UserSignupEvent{
		UserID:    acc.UserID,
		Email:     acc.Email,
		FullName:  acc.FullName,
		Role:      role.String(),
		OTPCode:   newOTP.Code,
		ExpiresAt: newOTP.ExpiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user signup", "user_id", acc.UserID, "error", err)
	}

	out := &SignupOutput{
		UserID:    acc.UserID,
		Email:     acc.Email,
		Role:      role.String(),
		ExpiresAt: newOTP.ExpiresAt,
	}
	if s.exposeOTP() {
		out.OTP = newOTP.Code
	}

	return out, nil
}
