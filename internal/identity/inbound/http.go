package inbound

import (
	"context"

	"github.com/rakasatria/eventum/internal/identity/usecase"
	"github.com/rakasatria/eventum/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.SignupOutput, error)
	VerifyEmail(ctx context.Context, in usecase.VerifyEmailInput) error
	ResendOTP(ctx context.Context, in usecase.ResendOTPInput) (*usecase.ResendOTPOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Signup & verification
	r.POST("/api/v1/auth/signup", end.Signup)
	r.POST("/api/v1/auth/verify-email", end.VerifyEmail)
	r.POST("/api/v1/auth/resend-otp", end.ResendOTP)

	// Sessions
	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/refresh", end.RefreshToken)

	// User Profile (need authenticated)
	r.GET("/api/v1/auth/profile", end.Profile)
}
