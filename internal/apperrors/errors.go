package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a state machine violation, e.g. approving an entry
// that is no longer pending.
var ErrConflict = errors.New("conflicting resource state")

// ErrUnbalanced indicates that an entry's debit and credit totals differ
// beyond the accepted tolerance.
var ErrUnbalanced = errors.New("entry debits and credits do not balance")

// ErrForbidden indicates the authenticated user lacks the role required for
// the operation.
var ErrForbidden = errors.New("operation not allowed for this user")

// AppError wraps an unexpected failure (usually from the persistence layer)
// with an HTTP-ish status code and a stable message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that also matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
