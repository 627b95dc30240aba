package inbound

import "net/http"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type SignupResponse struct {
	UserID       int64  `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	OTPExpiresAt int64  `json:"otp_expires_at"`
	OTP          string `json:"otp,omitempty"`
}

func (SignupResponse) StatusCode() int {
	return http.StatusCreated
}

func (SignupResponse) Message() string {
	return "Signup successful. Please check your email for the verification code."
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyEmailResponse struct{}

func (VerifyEmailResponse) Message() string {
	return "Email verified successfully. You can now log in."
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type ResendOTPResponse struct {
	Email        string `json:"email"`
	OTPExpiresAt int64  `json:"otp_expires_at"`
	OTP          string `json:"otp,omitempty"`
}

func (ResendOTPResponse) Message() string {
	return "A new verification code has been sent to your email."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ProfileResponse struct {
	UserID     int64  `json:"user_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	Bio        string `json:"bio,omitempty"`
}
