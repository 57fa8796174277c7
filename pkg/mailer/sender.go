package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message in a single attempt.
	// Provider rejections are reported with ErrInvalidAPIKey or
	// ErrInvalidMessage where the provider makes that distinction.
	Send(ctx context.Context, email *Email) error
}
