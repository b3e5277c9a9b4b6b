package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Failure taxonomy. Per-document failures are recorded against one of these
// sentinels; the scheduler never lets them cross document boundaries.
var (
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrExtractionFailure     = errors.New("extraction failure")
	ErrDetectionFailure      = errors.New("detection failure")
	ErrMaskingFailure        = errors.New("masking failure")
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrCapacityExceeded      = errors.New("capacity exceeded")
	ErrTimeout               = errors.New("timeout")
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
)

// FailureCode maps a pipeline error to its stable report code.
func FailureCode(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return "UNSUPPORTED_FORMAT"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrExtractionFailure):
		return "EXTRACTION_FAILURE"
	case errors.Is(err, ErrDetectionFailure):
		return "DETECTION_FAILURE"
	case errors.Is(err, ErrAuthenticationFailure):
		return "AUTHENTICATION_FAILURE"
	case errors.Is(err, ErrMaskingFailure):
		return "MASKING_FAILURE"
	case errors.Is(err, ErrCapacityExceeded):
		return "CAPACITY_EXCEEDED"
	default:
		return "INTERNAL"
	}
}

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

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers for the server boundary.
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func ResourceExhaustedError(message string) error {
	return status.Error(codes.ResourceExhausted, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
