package sendgrid

import "net/http"

// DefaultEndpoint is SendGrid's Web API mail endpoint.
const DefaultEndpoint = "https://sendgrid.com/api/mail.send.json"

// Option configures a Sender.
type Option func(*options)

type options struct {
	httpClient *http.Client
	endpoint   string
}

// WithHTTPClient sets a custom HTTP client for delivery requests.
// This is useful for testing with httptest servers or injecting
// custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithEndpoint overrides the delivery URL.
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}
