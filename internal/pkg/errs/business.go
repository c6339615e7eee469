package errs

import (
	"errors"
	"net/http"
)

// ErrBusinessRule is the sentinel for recoverable, user-facing rule violations.
// These are expected outcomes of invalid user actions, not system failures.
var ErrBusinessRule = errors.New("business rule violation")

// BusinessError carries a user-facing message together with the HTTP status
// the presentation layer should respond with. It is distinct from unexpected
// system failures: handlers render the message to the client verbatim instead
// of hiding it behind a generic 500.
type BusinessError struct {
	Message string
	Status  int
}

// NewBusinessError creates a BusinessError with the default 422 status.
func NewBusinessError(message string) *BusinessError {
	return &BusinessError{Message: message, Status: http.StatusUnprocessableEntity}
}

// NewBusinessErrorWithStatus creates a BusinessError with an explicit HTTP status.
func NewBusinessErrorWithStatus(message string, status int) *BusinessError {
	return &BusinessError{Message: message, Status: status}
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return ErrBusinessRule
}
