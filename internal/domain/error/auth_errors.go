// Package error defines domain-specific errors for the Mood Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrEmailAlreadyExists is returned when attempting to register an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidResetToken is returned when a password reset token is invalid or expired.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail       AuthErrorCode = "AUT-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010002"
	ErrCodeEmailExists        AuthErrorCode = "AUT-010003"
	ErrCodeMissingFields      AuthErrorCode = "AUT-010004"
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010005"

	// Token errors (02XXXX)
	ErrCodeMissingToken      AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken      AuthErrorCode = "AUT-020002"
	ErrCodeInvalidResetToken AuthErrorCode = "AUT-020003"
	ErrCodeExpiredResetToken AuthErrorCode = "AUT-020004"

	// Authorization errors (03XXXX)
	ErrCodeAdminRequired AuthErrorCode = "AUT-030001"

	// Rate limiting (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
