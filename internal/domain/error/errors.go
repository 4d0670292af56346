package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeNotVerified     = 4001
	CodeChallengeFailed = 4002
	CodeMissingField    = 4003
	CodeInvalidField    = 4004
	CodeInvalidRequest  = 4005
	CodeSessionNotFound = 4040
	CodeRateLimited     = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeInference      = 5001
)

// User-facing messages, rendered verbatim on the form
const (
	MsgNotVerified     = "Please confirm you are not a robot."
	MsgChallengeFailed = "CAPTCHA answer is incorrect. Please try again."
	MsgMissingField    = "Please fill all required fields."
	MsgInvalidField    = "Please provide valid transaction details."
	MsgInvalidRequest  = "Invalid request format"
	MsgRateLimited     = "Too many requests"
	MsgInternalServer  = "Internal server error"
)

// Base error types
var (
	// ErrNotVerified is returned when the "not a robot" checkbox was left unchecked
	ErrNotVerified = errors.New("human verification not confirmed")

	// ErrChallengeFailed is returned when the challenge answer does not equal the expected sum
	ErrChallengeFailed = errors.New("challenge answer is incorrect")

	// ErrMissingField is returned when merchant, category or card number is empty
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidField is returned when a field is outside its allowed range or enum
	ErrInvalidField = errors.New("field value is invalid")

	// ErrInvalidRequest is returned when the request cannot be decoded
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound is returned when a session has no stored challenge
	ErrSessionNotFound = errors.New("session not found")

	// ErrRateLimited is returned when the caller exceeded the submission rate
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInference is returned when the classifier fails to produce a label
	ErrInference = errors.New("inference failed")

	// ErrArtifactLoad is returned when a model artifact cannot be loaded at startup
	ErrArtifactLoad = errors.New("model artifact could not be loaded")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrNotVerified):
		return CodeNotVerified
	case errors.Is(err, ErrChallengeFailed):
		return CodeChallengeFailed
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidField):
		return CodeInvalidField
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrSessionNotFound):
		return CodeSessionNotFound
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrInference):
		return CodeInference
	default:
		return CodeInternalServer
	}
}

// UserMessage returns the literal message shown to the user for err
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotVerified):
		return MsgNotVerified
	case errors.Is(err, ErrChallengeFailed):
		return MsgChallengeFailed
	case errors.Is(err, ErrMissingField):
		return MsgMissingField
	case errors.Is(err, ErrInvalidField):
		return MsgInvalidField
	case errors.Is(err, ErrInvalidRequest):
		return MsgInvalidRequest
	case errors.Is(err, ErrRateLimited):
		return MsgRateLimited
	default:
		return MsgInternalServer
	}
}

// ValidationError describes why a submission was rejected before inference
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %v", e.Err)
	}
	return fmt.Sprintf("validation failed on %s (%s): %v", e.Field, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message rendered on the form
func (e *ValidationError) UserMessage() string {
	return UserMessage(e.Err)
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error for the given base error
func NewValidationError(err error, field, reason string) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Err:    err,
	}
}

// InferenceError wraps a classifier failure
type InferenceError struct {
	Model string
	Err   error
}

// Error implements the error interface
func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference with model %s failed: %v", e.Model, e.Err)
}

// Is reports ErrInference for any InferenceError
func (e *InferenceError) Is(target error) bool {
	return target == ErrInference
}

// Unwrap returns the underlying error
func (e *InferenceError) Unwrap() error {
	return e.Err
}

// NewInferenceError creates a new inference error
func NewInferenceError(model string, err error) error {
	return &InferenceError{Model: model, Err: err}
}

// IsValidationError checks if the error rejected the submission before inference
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsInferenceError checks if the error came from the classifier
func IsInferenceError(err error) bool {
	return errors.Is(err, ErrInference)
}
