// Package goerror defines the structured error model shared by every module.
//
// Repositories translate driver errors into the sentinel errors below;
// usecases wrap outcomes into *Error values carrying a user-facing message,
// a type and a stable code; the router maps codes onto HTTP statuses.
package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a uniqueness or state conflict at the storage layer.
	ErrConflict = errors.New("resource conflict")
)

// Type buckets errors into the three classes the application distinguishes.
type Type int

const (
	// TypeServer represents infrastructure failures (storage, broker, ...).
	TypeServer Type = iota
	// TypeBusiness represents domain rule violations.
	TypeBusiness
	// TypeValidation represents malformed or invalid input.
	TypeValidation
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used to map errors onto HTTP status codes.
type Code int

const (
	// CodeInternal is an internal or unspecified failure.
	CodeInternal Code = iota
	// CodeInvalidFormat is a malformed request body.
	CodeInvalidFormat
	// CodeInvalidInput is a well-formed request with invalid values.
	CodeInvalidInput
	// CodeNotFound is a missing resource.
	CodeNotFound
	// CodeConflict is a duplicate or state conflict.
	CodeConflict
	// CodeTooManyRequest is a throttled request.
	CodeTooManyRequest
	// CodeUnauthorized is an authentication failure.
	CodeUnauthorized
	// CodeForbidden is an authorization failure.
	CodeForbidden
	// CodeGone is a resource that existed but is no longer usable.
	CodeGone
)

// String returns the string representation of the code.
func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeConflict:
		return "ERROR_CODE_CONFLICT"
	case CodeTooManyRequest:
		return "ERROR_CODE_TOO_MANY_REQUESTS"
	case CodeUnauthorized:
		return "ERROR_CODE_UNAUTHORIZED"
	case CodeForbidden:
		return "ERROR_CODE_FORBIDDEN"
	case CodeGone:
		return "ERROR_CODE_GONE"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is the structured error carried between usecases and the router.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}
	return e.errType.String()
}

// String returns a verbose representation for logs.
func (e *Error) String() string {
	return fmt.Sprintf("type=%s code=%s msg=%q cause=%v",
		e.errType.String(), e.code.String(), e.msg, e.err)
}

// Msg returns the user-facing message.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable code.
func (e *Error) Code() Code {
	return e.code
}

// Fields returns per-field validation messages, if any.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the code onto an HTTP status.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	case CodeGone:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func newError(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer wraps an infrastructure failure. The cause is preserved for logs
// and never exposed to the client beyond a generic message.
func NewServer(err error) error {
	return newError(err, "Internal server error", TypeServer, CodeInternal)
}

// NewBusiness creates a domain rule violation with a user-facing message.
func NewBusiness(msg string, code Code) error {
	return newError(nil, msg, TypeBusiness, code)
}

// NewNotFound creates a business not-found error with a user-facing message.
func NewNotFound(msg string) error {
	return newError(nil, msg, TypeBusiness, CodeNotFound)
}

// NewInvalidInput wraps a validation failure, optionally with field messages
// given as key/value pairs.
func NewInvalidInput(err error, kv ...string) error {
	if err != nil {
		return newError(err, "Validation error", TypeValidation, CodeInvalidInput)
	}

	e := &Error{msg: "Validation error", errType: TypeValidation, code: CodeInvalidInput}
	if len(kv)%2 != 0 {
		return newError(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}

	e.fields = make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		e.fields[kv[i]] = kv[i+1]
	}

	return e
}

// NewInvalidFormat creates a malformed-request error.
func NewInvalidFormat(msgs ...string) error {
	if len(msgs) == 0 {
		return newError(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}
	return newError(nil, msgs[0], TypeValidation, CodeInvalidFormat)
}
