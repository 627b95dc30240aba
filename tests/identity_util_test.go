package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type signupData struct {
	UserID       int64  `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	OTPExpiresAt int64  `json:"otp_expires_at"`
	OTP          string `json:"otp"`
}

type loginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func signup(t *testing.T, email, password, fullName, role string) signupData {
	t.Helper()

	payload := map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
		"role":      role,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/signup", payload, "")
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("signup failed: status=%d message=%q", status, errEnv.Message)
	}

	var data signupData
	decodeSuccess(t, body, &data)
	if data.OTP == "" {
		t.Fatal("signup response has no otp; run the server with modules.identity.expose_otp enabled")
	}

	return data
}

func verifyEmail(t *testing.T, email, otp string) {
	t.Helper()

	payload := map[string]string{"email": email, "otp": otp}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/verify-email", payload, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("verify email failed: status=%d message=%q", status, errEnv.Message)
	}
}

func login(t *testing.T, email, password string) loginData {
	t.Helper()

	payload := map[string]string{"email": email, "password": password}

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/login", payload, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("login failed: status=%d message=%q", status, errEnv.Message)
	}

	var data loginData
	decodeSuccess(t, body, &data)

	return data
}

// verifiedToken provisions a fresh verified account and returns its access token.
func verifiedToken(t *testing.T, prefix, role string) (string, string) {
	t.Helper()

	email := uniqueEmail(prefix)
	data := signup(t, email, "Secret123!", "Test User", role)
	verifyEmail(t, email, data.OTP)

	return login(t, email, "Secret123!").AccessToken, email
}
