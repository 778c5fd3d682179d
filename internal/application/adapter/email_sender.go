// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending transactional emails.
type EmailSender interface {
	// Send sends an email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// PasswordResetEmailInput carries the data for a password reset email.
type PasswordResetEmailInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// EmailService defines the application-facing email operations.
type EmailService interface {
	// SendPasswordResetEmail sends a password reset email to the user.
	SendPasswordResetEmail(ctx context.Context, input PasswordResetEmailInput) error
}
