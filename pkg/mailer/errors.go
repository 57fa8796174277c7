package mailer

import "errors"

var (
	// ErrMissingCredentials indicates a provider was configured without
	// one of its required credentials. Providers wrap it with the field name.
	ErrMissingCredentials = errors.New("missing required credentials")

	// ErrInvalidAPIKey indicates the provider rejected the credentials.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrInvalidMessage indicates the provider rejected the message content.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have HTML or text content")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter in a draft.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
