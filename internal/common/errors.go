package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")

	// ErrIdentificationUnresolved means no QR code, barcode, or manual hint
	// matched the roster. Not a failure: the script is held awaiting manual
	// identification and must not proceed to grading.
	ErrIdentificationUnresolved = errors.New("identification unresolved")

	// ErrInvalidOverride means override preconditions were not met; the
	// answer and script are left unchanged.
	ErrInvalidOverride = errors.New("invalid override")

	// ErrInvalidTransition means a processing_status edge outside the state
	// machine was attempted.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStaleScript means a compare-and-swap on status+version lost: the
	// script moved on (cancelled, re-submitted, or advanced by another
	// worker) and the stage result must be discarded.
	ErrStaleScript = errors.New("stale script version")
)

// TransientError wraps a collaborator failure that is worth retrying
// (timeouts, network errors). Anything else is treated as permanent.
type TransientError struct {
	Cause error
}

func (e *TransientError) Error() string { return fmt.Sprintf("transient: %v", e.Cause) }
func (e *TransientError) Unwrap() error { return e.Cause }

// Transient reports whether err should be retried before escalating.
func Transient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
