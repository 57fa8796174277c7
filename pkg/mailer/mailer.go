package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/multimail/pkg/logger"
)

// Mailer validates and completes messages before handing them to a Sender.
type Mailer struct {
	sender Sender
	log    *slog.Logger
	config Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used to report delivery outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mailer) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		config: cfg,
		log:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and delivers it through the configured sender.
// A missing From falls back to Config.DefaultFrom and a missing Text part is
// derived from HTML. The caller's Email is not modified.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}

	prepared := *email
	if prepared.From == "" {
		prepared.From = m.config.DefaultFrom
	}
	if prepared.Text == "" {
		prepared.Text = PlainText(prepared.HTML)
	}

	if err := m.sender.Send(ctx, &prepared); err != nil {
		m.log.ErrorContext(ctx, "email delivery failed",
			slog.Any("to", prepared.To),
			slog.String("subject", prepared.Subject),
			slog.String("error", err.Error()),
		)
		return errors.Join(ErrSendFailed, err)
	}

	m.log.InfoContext(ctx, "email delivered",
		slog.Any("to", prepared.To),
		slog.String("subject", prepared.Subject),
		slog.Int("attachments", len(prepared.Attachments)),
	)
	return nil
}
