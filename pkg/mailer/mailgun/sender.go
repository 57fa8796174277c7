// Package mailgun delivers mailer.Email messages through the Mailgun API.
package mailgun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/dmitrymomot/multimail/pkg/mailer"
)

var (
	// ErrMissingAPIKey is returned by New when Config.APIKey is empty.
	ErrMissingAPIKey = fmt.Errorf("mailgun: %w: api_key", mailer.ErrMissingCredentials)

	// ErrMissingDomain is returned by New when Config.Domain is empty.
	ErrMissingDomain = fmt.Errorf("mailgun: %w: domain", mailer.ErrMissingCredentials)
)

// Sender implements mailer.Sender using the Mailgun API.
type Sender struct {
	client *mailgun.MailgunImpl
	from   string
}

// New creates a Mailgun sender for the configured domain.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Domain == "" {
		return nil, ErrMissingDomain
	}

	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		mg.SetAPIBase(cfg.APIBase)
	}

	return &Sender{
		client: mg,
		from:   mailer.Recipient(cfg.SenderName, cfg.SenderEmail),
	}, nil
}

// Send implements mailer.Sender.
// A 401 response is reported as mailer.ErrInvalidAPIKey and a 400 response
// as mailer.ErrInvalidMessage.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email == nil {
		return errors.New("mailgun: nil email")
	}

	msg, err := s.message(email)
	if err != nil {
		return err
	}

	if _, _, err := s.client.Send(ctx, msg); err != nil {
		if kind := classify(mailgun.GetStatusFromErr(err)); kind != nil {
			return errors.Join(kind, fmt.Errorf("mailgun: %w", err))
		}
		return fmt.Errorf("mailgun: failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) message(email *mailer.Email) (*mailgun.Message, error) {
	from := email.From
	if from == "" {
		from = s.from
	}

	msg := s.client.NewMessage(from, email.Subject, email.Text, email.To...)
	if email.HTML != "" {
		msg.SetHtml(email.HTML)
	}
	if email.ReplyTo != "" {
		msg.SetReplyTo(email.ReplyTo)
	}
	for _, cc := range email.CC {
		msg.AddCC(cc)
	}
	for _, bcc := range email.BCC {
		msg.AddBCC(bcc)
	}
	for name, value := range email.Headers {
		msg.AddHeader(name, value)
	}
	if !email.Date.IsZero() {
		msg.AddHeader("Date", email.Date.Format(http.TimeFormat))
	}
	if len(email.Tags) > 0 {
		if err := msg.AddTag(email.Tags.TagNames()...); err != nil {
			return nil, fmt.Errorf("mailgun: %w: %v", mailer.ErrInvalidMessage, err)
		}
	}
	for _, a := range email.Attachments {
		if a.Inline() {
			msg.AddReaderInline(a.Filename, io.NopCloser(bytes.NewReader(a.Content)))
			continue
		}
		msg.AddBufferAttachment(a.Filename, a.Content)
	}

	return msg, nil
}

func classify(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return mailer.ErrInvalidAPIKey
	case http.StatusBadRequest:
		return mailer.ErrInvalidMessage
	default:
		return nil
	}
}
