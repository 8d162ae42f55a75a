package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Fixed error taxonomy. Lower-level parser/model errors are translated into
// these before crossing the orchestrator boundary; callers never see raw
// library errors.
var (
	// input errors, rejected before any state transition
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document contains no extractable text")

	// stage errors, recorded against the contract, transition to FAILED
	ErrCorruptDocument   = errors.New("document is corrupt or unreadable")
	ErrModelUnavailable  = errors.New("model unavailable")
	ErrGenerationTimeout = errors.New("summary generation exceeded time budget")
	ErrGenerationFailed  = errors.New("summary generation failed")

	// orchestration errors
	ErrAlreadyProcessing = errors.New("contract is already being processed")
	ErrInvalidTransition = errors.New("illegal contract status transition")

	// generic
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDatabase     = errors.New("database error")
)

// ErrorKind returns the stable machine-readable kind string recorded on a
// contract for a taxonomy error.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return "UNSUPPORTED_FORMAT"
	case errors.Is(err, ErrEmptyDocument):
		return "EMPTY_DOCUMENT"
	case errors.Is(err, ErrCorruptDocument):
		return "CORRUPT_DOCUMENT"
	case errors.Is(err, ErrModelUnavailable):
		return "MODEL_UNAVAILABLE"
	case errors.Is(err, ErrGenerationTimeout):
		return "GENERATION_TIMEOUT"
	case errors.Is(err, ErrGenerationFailed):
		return "GENERATION_FAILED"
	case errors.Is(err, ErrAlreadyProcessing):
		return "ALREADY_PROCESSING"
	default:
		return "INTERNAL"
	}
}

// AppError carries a stable code plus a human-readable message across layers.
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

// GRPCStatus translates a taxonomy error into a gRPC status for the server
// boundary. Every failure keeps a stable kind plus a readable message.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf("%s: %v", ErrorKind(err), err)
	switch {
	case errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrEmptyDocument),
		errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, msg)
	case errors.Is(err, ErrAlreadyProcessing):
		return status.Error(codes.Aborted, msg)
	case errors.Is(err, ErrGenerationTimeout):
		return status.Error(codes.DeadlineExceeded, msg)
	case errors.Is(err, ErrModelUnavailable):
		return status.Error(codes.Unavailable, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}
