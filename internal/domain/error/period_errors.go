// Package error defines domain-specific errors for the Budget Questor application.
package error

import "errors"

// Period domain errors.
var (
	// ErrPeriodNotFound is returned when no period matches the query.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrPeriodLookupFailed is returned when the store rejected a period query.
	ErrPeriodLookupFailed = errors.New("period lookup failed")

	// ErrPeriodCreationFailed is returned when a new period could not be persisted.
	ErrPeriodCreationFailed = errors.New("period creation failed")

	// ErrPeriodTotalUpdateFailed is returned when the denormalized running
	// total could not be incremented after an expense insert.
	ErrPeriodTotalUpdateFailed = errors.New("period total update failed")
)

// PeriodErrorCode defines error codes for period errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	// Lookup/creation errors (01XXXX)
	ErrCodePeriodLookupFailed   PeriodErrorCode = "PRD-010001"
	ErrCodePeriodCreationFailed PeriodErrorCode = "PRD-010002"

	// Mutation errors (02XXXX)
	ErrCodePeriodTotalUpdateFailed PeriodErrorCode = "PRD-020001"
)

// PeriodError represents a period error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
