package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Generation errors
var (
	ErrNetwork              = errors.New("network failure")
	ErrGenerationParse      = errors.New("generation output could not be parsed")
	ErrGenerationTimeout    = errors.New("generation timed out")
	ErrMissingCredential    = errors.New("generation credential is not configured")
	ErrGenerationInProgress = errors.New("a generation is already in progress")
)

// Curriculum and session errors
var (
	ErrNoCurriculum      = errors.New("no curriculum loaded")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrValidationFailed  = errors.New("validation failed")
	ErrBadRequest        = errors.New("bad request")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("invalid view transition")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// GenerationParseError reports text from the provider that is not a curriculum.
// Offset is the byte position of the failure when the decoder knows it, else -1.
type GenerationParseError struct {
	Reason string
	Offset int64
	Err    error
}

func (e *GenerationParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (at byte %d)", ErrGenerationParse, e.Reason, e.Offset)
	}
	return fmt.Sprintf("%s: %s", ErrGenerationParse, e.Reason)
}

func (e *GenerationParseError) Is(target error) bool { return target == ErrGenerationParse }

func (e *GenerationParseError) Unwrap() error { return e.Err }

// NewGenerationParseError creates a parse error without a known offset
func NewGenerationParseError(reason string, err error) *GenerationParseError {
	return &GenerationParseError{Reason: reason, Offset: -1, Err: err}
}

// GenerationTimeoutError reports a generation call that exceeded its deadline
type GenerationTimeoutError struct {
	After time.Duration
}

func (e *GenerationTimeoutError) Error() string {
	return fmt.Sprintf("%s after %s", ErrGenerationTimeout, e.After)
}

func (e *GenerationTimeoutError) Is(target error) bool { return target == ErrGenerationTimeout }

// NetworkError wraps a transport failure talking to an upstream service
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrNetwork, e.Op, e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

func (e *NetworkError) Unwrap() error { return e.Err }

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError wraps ErrValidationFailed with a field level reason
func NewValidationError(field, message string) *CustomError {
	return (&CustomError{Err: ErrValidationFailed, Message: message}).
		WithDetails(map[string]interface{}{"field": field})
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
