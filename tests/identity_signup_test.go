package tests

import (
	"net/http"
	"testing"
)

func TestSignupVerifyLogin(t *testing.T) {
	email := uniqueEmail("real-signup")

	// Arrange
	data := signup(t, email, "Secret123!", "Test User", "seeker")
	if data.Role != "seeker" {
		t.Fatalf("role = %q, want seeker", data.Role)
	}

	// Login before verification must be refused.
	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": email, "password": "Secret123!",
	}, "")
	if status != http.StatusForbidden {
		t.Fatalf("unverified login status = %d, want 403", status)
	}

	// Act
	verifyEmail(t, email, data.OTP)

	// Assert
	tokens := login(t, email, "Secret123!")
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("login after verification returned empty tokens")
	}

	// Second verification attempt conflicts.
	status, body = doJSON(t, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{
		"email": email, "otp": data.OTP,
	}, "")
	if status != http.StatusConflict {
		errEnv := decodeError(t, body)
		t.Fatalf("re-verify status = %d message=%q, want 409", status, errEnv.Message)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	email := uniqueEmail("real-dup")
	signup(t, email, "Secret123!", "Test User", "seeker")

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"email": email, "password": "Secret123!", "full_name": "Test User",
	}, "")
	if status != http.StatusConflict {
		errEnv := decodeError(t, body)
		t.Fatalf("duplicate signup status = %d message=%q, want 409", status, errEnv.Message)
	}
}

func TestVerifyWrongOTPCountsDown(t *testing.T) {
	email := uniqueEmail("real-attempts")
	data := signup(t, email, "Secret123!", "Test User", "seeker")

	wrong := "000000"
	if wrong == data.OTP {
		wrong = "000001"
	}

	for i := range 3 {
		status, _ := doJSON(t, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{
			"email": email, "otp": wrong,
		}, "")
		if status != http.StatusUnprocessableEntity {
			t.Fatalf("wrong otp try %d status = %d, want 422", i+1, status)
		}
	}

	// Correct code no longer works once attempts are exhausted.
	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{
		"email": email, "otp": data.OTP,
	}, "")
	if status != http.StatusTooManyRequests {
		errEnv := decodeError(t, body)
		t.Fatalf("exhausted verify status = %d message=%q, want 429", status, errEnv.Message)
	}
}

func TestResendOTPInvalidatesOldCode(t *testing.T) {
	email := uniqueEmail("real-resend")
	first := signup(t, email, "Secret123!", "Test User", "seeker")

	status, body := doJSON(t, http.MethodPost, "/api/v1/auth/resend-otp", map[string]string{
		"email": email,
	}, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("resend status = %d message=%q", status, errEnv.Message)
	}

	var second signupData
	decodeSuccess(t, body, &second)
	if second.OTP == "" {
		t.Fatal("resend response has no otp; run the server with modules.identity.expose_otp enabled")
	}

	if second.OTP != first.OTP {
		// The old code must be dead.
		status, _ = doJSON(t, http.MethodPost, "/api/v1/auth/verify-email", map[string]string{
			"email": email, "otp": first.OTP,
		}, "")
		if status == http.StatusOK {
			t.Fatal("old otp still verified after resend")
		}
	}

	verifyEmail(t, email, second.OTP)
}
