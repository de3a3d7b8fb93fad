package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary handling
type Kind string

const (
	KindValidation     Kind = "validation_error"
	KindAuth           Kind = "auth_error"
	KindProvider       Kind = "provider_error"
	KindInternal       Kind = "internal_error"
	KindSecretNotFound Kind = "secret_not_found"
	KindAccessDenied   Kind = "access_denied"
)

// Error is a typed application error
type Error struct {
	Kind    Kind
	Message string
	// StatusCode carries the downstream HTTP status for provider errors
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a validation error for malformed input
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Auth creates an authentication error for credential or token failures
func Auth(message string, err error) *Error {
	return &Error{Kind: KindAuth, Message: message, Err: err}
}

// Provider creates an error for a downstream provider failure
func Provider(statusCode int, message string) *Error {
	return &Error{Kind: KindProvider, Message: message, StatusCode: statusCode}
}

// Internal wraps an unexpected error
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "unexpected error", Err: err}
}

// SecretNotFound creates an error for a missing secret
func SecretNotFound(name string) *Error {
	return &Error{Kind: KindSecretNotFound, Message: fmt.Sprintf("secret %q not found", name)}
}

// AccessDenied creates an error for a secret store access failure
func AccessDenied(name string, err error) *Error {
	return &Error{Kind: KindAccessDenied, Message: fmt.Sprintf("access denied for secret %q", name), Err: err}
}

// KindOf extracts the Kind from an error chain, KindInternal when untyped
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsAuth reports whether err is an authentication error
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

// IsProvider reports whether err is a downstream provider error
func IsProvider(err error) bool {
	return KindOf(err) == KindProvider
}
