package inbound

import (
	"github.com/rakasatria/eventum/internal/identity/usecase"
	"github.com/rakasatria/eventum/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for signup, verification, sessions and
// the profile view.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{
		UserID:       resp.UserID,
		Email:        resp.Email,
		Role:         resp.Role,
		OTPExpiresAt: resp.ExpiresAt.Unix(),
		OTP:          resp.OTP,
	}, nil
}

func (h *HTTPEndpoint) VerifyEmail(r *router.Request) (any, error) {
	var req VerifyEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyEmail(r.Context(), usecase.VerifyEmailInput{
		Email: req.Email,
		OTP:   req.OTP,
	}); err != nil {
		return nil, err
	}

	return VerifyEmailResponse{}, nil
}

func (h *HTTPEndpoint) ResendOTP(r *router.Request) (any, error) {
	var req ResendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ResendOTP(r.Context(), usecase.ResendOTPInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return ResendOTPResponse{
		Email:        resp.Email,
		OTPExpiresAt: resp.ExpiresAt.Unix(),
		OTP:          resp.OTP,
	}, nil
}

func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}

	return RefreshTokenResponse{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		UserID:     resp.UserID,
		Email:      resp.Email,
		FullName:   resp.FullName,
		Role:       resp.Role,
		IsVerified: resp.IsVerified,
		Bio:        resp.Bio,
	}, nil
}
