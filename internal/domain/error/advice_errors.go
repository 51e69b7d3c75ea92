// Package error defines domain-specific errors for the Budget Questor application.
package error

import "errors"

// Advice relay domain errors.
var (
	// ErrEmptyQuestion is returned when the advisor question is blank.
	ErrEmptyQuestion = errors.New("question is required")

	// ErrAdviceUnavailable is returned when the upstream completions call
	// failed or returned an unexpected shape. The relay never retries.
	ErrAdviceUnavailable = errors.New("advice unavailable")
)

// AdviceErrorCode defines error codes for advice relay errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdviceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyQuestion AdviceErrorCode = "ADV-010001"

	// Upstream errors (02XXXX)
	ErrCodeAdviceUnavailable AdviceErrorCode = "ADV-020001"
)

// AdviceError represents an advice relay error with code and message.
type AdviceError struct {
	Code    AdviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdviceError) Unwrap() error {
	return e.Err
}

// NewAdviceError creates a new AdviceError with the given code and message.
func NewAdviceError(code AdviceErrorCode, message string, err error) *AdviceError {
	return &AdviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
