// Package errors defines the API-level error type shared by the service and
// handler layers. An APIError carries the HTTP status and the exact message
// surfaced to the caller.
package errors

import (
	"fmt"
	"net/http"
)

// APIError is a failure outcome with a caller-facing message.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewErrUserExists reports a registration conflict, naming the user.
func NewErrUserExists(name string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("user %s already exists", name),
	}
}

// NewErrUserNotFound reports that no user exists under name.
func NewErrUserNotFound(name string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("user %s does not exist", name),
	}
}

// NewErrAlreadyVerified reports a repeated verification attempt.
func NewErrAlreadyVerified(name string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("user %s is already verified", name),
	}
}

// NewErrNotVerified reports an operation that requires a verified user.
func NewErrNotVerified(name string) *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: fmt.Sprintf("user %s is not verified", name),
	}
}

// NewErrWrongPassword reports an old-password mismatch. The message is
// distinct from the not-found one on purpose.
func NewErrWrongPassword(name string) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: fmt.Sprintf("wrong password for user %s", name),
	}
}

// NewErrRegistration reports a registration that failed for no business
// reason. The message stays generic.
func NewErrRegistration(err error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "failed to register user",
		Err:     err,
	}
}

// NewErrInternalServerError wraps an unexpected failure.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Err:     err,
	}
}
