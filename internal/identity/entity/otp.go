package entity

import (
	"fmt"
	"time"
)

// OTPMaxAttempts bounds failed verification tries per code. Once reached,
// the code is dead even when a later guess is correct.
const OTPMaxAttempts int16 = 3

// OTPDefaultTTL is the validity window applied when configuration does not
// override it.
const OTPDefaultTTL = 10 * time.Minute

type EmailOTP struct {
	ID        int64
	Email     string
	Code      string
	Attempts  int16
	ExpiresAt time.Time
	CreatedAt time.Time
}

type OTPVerifyStatus int

const (
	OTPVerified OTPVerifyStatus = iota
	OTPExpired
	OTPMaxAttemptsReached
	OTPMismatch
)

type OTPVerifyResult struct {
	Status    OTPVerifyStatus
	Remaining int16
}

// Message returns the user-facing reason for a non-verified result.
func (r OTPVerifyResult) Message() string {
	switch r.Status {
	case OTPExpired:
		return "OTP has expired"
	case OTPMaxAttemptsReached:
		return "Maximum verification attempts exceeded"
	case OTPMismatch:
		return fmt.Sprintf("Invalid OTP. %d attempts remaining", r.Remaining)
	default:
		return ""
	}
}

// Verify evaluates submitted against the stored code at the given instant.
// The checks run in strict order: expiry first, regardless of attempts;
// then attempt exhaustion, regardless of code correctness; then the code
// comparison itself. A mismatch increments Attempts on the receiver and the
// caller is responsible for persisting the new count. A verified result
// does not mutate the record; the caller deletes it.
func (o *EmailOTP) Verify(submitted string, now time.Time) OTPVerifyResult {
	if now.After(o.ExpiresAt) {
		return OTPVerifyResult{Status: OTPExpired}
	}

	if o.Attempts >= OTPMaxAttempts {
		return OTPVerifyResult{Status: OTPMaxAttemptsReached}
	}

	if submitted != o.Code {
		o.Attempts++
		return OTPVerifyResult{Status: OTPMismatch, Remaining: OTPMaxAttempts - o.Attempts}
	}

	return OTPVerifyResult{Status: OTPVerified}
}

type CreateEmailOTP struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
}
