// Package error defines domain-specific errors for the Mood Tracker application.
package error

import "errors"

// Admin domain errors.
var (
	// ErrAdminUserNotFound is returned when the targeted user does not exist.
	ErrAdminUserNotFound = errors.New("user not found")

	// ErrInvalidStatsYear is returned when the requested year is not a plausible calendar year.
	ErrInvalidStatsYear = errors.New("invalid year")
)

// AdminErrorCode defines error codes for admin errors.
// Format: ADM-XXYYYY where XX is category and YYYY is specific error.
type AdminErrorCode string

const (
	ErrCodeAdminUserNotFound AdminErrorCode = "ADM-010001"
	ErrCodeInvalidStatsYear  AdminErrorCode = "ADM-010002"
)

// AdminError represents an admin operation error with code and message.
type AdminError struct {
	Code    AdminErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdminError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdminError) Unwrap() error {
	return e.Err
}

// NewAdminError creates a new AdminError with the given code and message.
func NewAdminError(code AdminErrorCode, message string, err error) *AdminError {
	return &AdminError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
