// Package error defines domain-specific errors for the Mood Tracker application.
package error

import "errors"

// Mood entry domain errors.
var (
	// ErrMoodEntryNotFound is returned when a mood entry is not found in the system.
	ErrMoodEntryNotFound = errors.New("mood entry not found")

	// ErrInvalidScore is returned when the score lies outside [1,10].
	ErrInvalidScore = errors.New("invalid mood score")

	// ErrInvalidMoodDate is returned when the entry date is missing or malformed.
	ErrInvalidMoodDate = errors.New("invalid mood date")

	// ErrUnauthorizedMoodAccess is returned when the caller does not own the targeted
	// mood entry. A missing entry is reported the same way so that callers cannot
	// probe for the existence of other users' records.
	ErrUnauthorizedMoodAccess = errors.New("unauthorized access to mood entry")

	// ErrMoodEntryConflict is returned when a concurrent submission already created
	// an entry for the same (user, date) pair.
	ErrMoodEntryConflict = errors.New("mood entry already exists for this date")
)

// MoodErrorCode defines error codes for mood entry errors.
// Format: MOO-XXYYYY where XX is category and YYYY is specific error.
type MoodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidScore      MoodErrorCode = "MOO-010001"
	ErrCodeInvalidMoodDate   MoodErrorCode = "MOO-010002"
	ErrCodeMissingMoodFields MoodErrorCode = "MOO-010003"

	// Access errors (02XXXX)
	ErrCodeUnauthorizedMoodAccess MoodErrorCode = "MOO-020001"

	// Conflict errors (03XXXX)
	ErrCodeMoodEntryConflict MoodErrorCode = "MOO-030001"
)

// MoodError represents a mood entry error with code and message.
type MoodError struct {
	Code    MoodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MoodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MoodError) Unwrap() error {
	return e.Err
}

// NewMoodError creates a new MoodError with the given code and message.
func NewMoodError(code MoodErrorCode, message string, err error) *MoodError {
	return &MoodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
