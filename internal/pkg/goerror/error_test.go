package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeGone, http.StatusGone},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := NewBusiness("boom", tc.code)

		var gerr *Error
		if !errors.As(err, &gerr) {
			t.Fatalf("NewBusiness did not return *Error")
		}
		if got := gerr.StatusCode(); got != tc.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestNewServerHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewServer(cause)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatal("NewServer did not return *Error")
	}
	if gerr.Msg() != "Internal server error" {
		t.Errorf("Msg() = %q", gerr.Msg())
	}
	if !errors.Is(err, cause) {
		t.Error("cause is not unwrappable")
	}
}

func TestNewInvalidInputFields(t *testing.T) {
	err := NewInvalidInput(nil, "starts_at", "must be in the future")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatal("NewInvalidInput did not return *Error")
	}
	if got := gerr.Fields()["starts_at"]; got != "must be in the future" {
		t.Errorf("field message = %q", got)
	}
	if gerr.Code() != CodeInvalidInput {
		t.Errorf("code = %v", gerr.Code())
	}
}
