package apperrors

import (
	"errors"
	"fmt"
)

// AppError wraps an infrastructure failure with an HTTP-ish status code and
// a message safe to log. Repositories return it for database failures.
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// InvariantViolationError reports a broken arithmetic invariant: a global
// ledger imbalance or divergent cooperative prices. It indicates a bug in
// the core itself; callers must propagate it, never swallow it.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Message
}

// NewInvariantViolation creates an unrecoverable invariant failure.
func NewInvariantViolation(format string, args ...any) *InvariantViolationError {
	return &InvariantViolationError{Message: fmt.Sprintf(format, args...)}
}

// IsInvariantViolation reports whether err is an invariant violation.
func IsInvariantViolation(err error) bool {
	var target *InvariantViolationError
	return errors.As(err, &target)
}
