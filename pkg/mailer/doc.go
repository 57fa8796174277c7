// Package mailer provides a provider-neutral email model and delivery client.
//
// The package separates the message (Email) from the provider that delivers it
// (Sender), so applications can swap providers without touching the code that
// builds messages.
//
// # Architecture
//
//   - Email: the generic message with addresses, bodies, headers, tags and attachments
//   - Sender: interface implemented by provider adapters
//   - Mailer: validates and completes messages, then hands them to a Sender
//
// Provider adapters live in sub-packages:
//
//   - sendgrid: SendGrid Web API (mail.send.json), form-encoded requests
//   - resend: Resend API via the official SDK
//   - mailgun: Mailgun API via the official SDK
//
// # Usage
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/multimail/pkg/mailer"
//		"github.com/dmitrymomot/multimail/pkg/mailer/sendgrid"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender, err := sendgrid.New(sendgrid.Config{
//			APIUser: os.Getenv("SENDGRID_API_USER"),
//			APIKey:  os.Getenv("SENDGRID_API_KEY"),
//		})
//		if err != nil {
//			panic(err)
//		}
//
//		m := mailer.New(sender, mailer.Config{DefaultFrom: "Team <team@example.com>"})
//
//		err = m.Send(ctx, &mailer.Email{
//			To:      []string{"user@example.com"},
//			Subject: "Welcome",
//			HTML:    "<p>Hello!</p>",
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// Mailer.Send fills a missing sender from Config.DefaultFrom and derives a
// plain text part from HTML (see PlainText) when none is given.
//
// # Drafts
//
// ParseDraft reads a message file made of YAML frontmatter and a markdown body:
//
//	---
//	to: [user@example.com]
//	subject: Welcome
//	tags: [onboarding]
//	---
//	Hello **there**!
//
// # Errors
//
// Validation errors:
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: Neither HTML nor text content provided
//   - ErrInvalidFrontmatter: Invalid YAML frontmatter in a draft
//
// Provider errors, shared by all adapters:
//
//   - ErrMissingCredentials: Adapter constructed without a required credential
//   - ErrInvalidAPIKey: Provider rejected the credentials
//   - ErrInvalidMessage: Provider rejected the message
//
// Mailer wraps every delivery failure with ErrSendFailed; the provider's own
// error remains reachable through errors.Is and errors.As.
package mailer
