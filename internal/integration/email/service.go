// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/mood-tracker/backend/internal/application/adapter"
)

const passwordResetHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Reset your password</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your Mood Tracker password.
     Click the link below to choose a new one. This link expires in %s.</p>
  <p><a href="%s" style="display:inline-block;padding:10px 20px;background:#4f46e5;color:#fff;text-decoration:none;border-radius:6px;">Reset password</a></p>
  <p>If you did not request this, you can safely ignore this email.</p>
</body>
</html>`

const passwordResetText = `Hi %s,

We received a request to reset your Mood Tracker password.
Open the link below to choose a new one. This link expires in %s.

%s

If you did not request this, you can safely ignore this email.`

// service implements the adapter.EmailService interface.
type service struct {
	sender adapter.EmailSender
}

// NewService creates a new email service backed by the given sender.
func NewService(sender adapter.EmailSender) adapter.EmailService {
	return &service{
		sender: sender,
	}
}

// SendPasswordResetEmail sends the password reset email synchronously.
func (s *service) SendPasswordResetEmail(ctx context.Context, input adapter.PasswordResetEmailInput) error {
	name := input.UserName
	if name == "" {
		name = "there"
	}

	_, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.UserEmail,
		Subject: "Reset your Mood Tracker password",
		HTML:    fmt.Sprintf(passwordResetHTML, name, input.ExpiresIn, input.ResetURL),
		Text:    fmt.Sprintf(passwordResetText, name, input.ExpiresIn, input.ResetURL),
	})
	if err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}
