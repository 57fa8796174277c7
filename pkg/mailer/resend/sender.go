package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/multimail/pkg/mailer"
)

// ErrMissingAPIKey is returned by New when Config.APIKey is empty.
var ErrMissingAPIKey = fmt.Errorf("resend: %w: api_key", mailer.ErrMissingCredentials)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	from   string
}

// Option configures a Sender.
type Option func(*options)

type options struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// WithHTTPClient sets a custom HTTP client for API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(u *url.URL) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := resend.NewClient(cfg.APIKey)
	if o.httpClient != nil {
		client = resend.NewCustomClient(o.httpClient, cfg.APIKey)
	}
	if o.baseURL != nil {
		client.BaseURL = o.baseURL
	}

	return &Sender{
		client: client,
		from:   mailer.Recipient(cfg.SenderName, cfg.SenderEmail),
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email == nil {
		return errors.New("resend: nil email")
	}

	_, err := s.client.Emails.SendWithContext(ctx, s.request(email))
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) request(email *mailer.Email) *resend.SendEmailRequest {
	from := email.From
	if from == "" {
		from = s.from
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if !email.Date.IsZero() {
		headers := make(map[string]string, len(email.Headers)+1)
		for k, v := range email.Headers {
			headers[k] = v
		}
		headers["Date"] = email.Date.Format(http.TimeFormat)
		req.Headers = headers
	}

	for _, a := range email.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		})
	}

	for name, value := range email.Tags {
		req.Tags = append(req.Tags, resend.Tag{Name: name, Value: tagValue(value)})
	}

	return req
}

// tagValue converts a tag value to the string Resend expects.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
