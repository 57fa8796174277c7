package sendgrid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/multimail/pkg/mailer"
)

var (
	// ErrMissingAPIUser is returned by New when Config.APIUser is empty.
	ErrMissingAPIUser = fmt.Errorf("sendgrid: %w: api_user", mailer.ErrMissingCredentials)

	// ErrMissingAPIKey is returned by New when Config.APIKey is empty.
	ErrMissingAPIKey = fmt.Errorf("sendgrid: %w: api_key", mailer.ErrMissingCredentials)

	// ErrInvalidSMTPAPI is returned by New when the x-smtpapi value cannot be JSON-encoded.
	ErrInvalidSMTPAPI = errors.New("sendgrid: invalid x-smtpapi value")

	// ErrInvalidParam is returned by New when a passthrough parameter cannot be encoded.
	ErrInvalidParam = errors.New("sendgrid: invalid parameter")

	// ErrNilEmail is returned by Deliver when called without a message.
	ErrNilEmail = errors.New("sendgrid: nil email")

	// ErrRejected matches every *ProviderError.
	ErrRejected = errors.New("sendgrid: request rejected")
)

// ErrorKind classifies a SendGrid error response.
type ErrorKind int

const (
	// KindProvider is any error response without a more specific kind.
	KindProvider ErrorKind = iota
	// KindInvalidAPIKey means SendGrid rejected the credentials.
	KindInvalidAPIKey
	// KindInvalidMessage means SendGrid found no destination address.
	KindInvalidMessage
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidAPIKey:
		return "invalid_api_key"
	case KindInvalidMessage:
		return "invalid_message"
	default:
		return "provider"
	}
}

// Error strings SendGrid uses for the specific kinds.
const (
	badCredentials     = "Bad username / password"
	missingDestination = "Missing destination email"
)

// ProviderError is returned by Deliver for any non-200 response.
type ProviderError struct {
	Response   Response // decoded body, nil when the body was empty
	Errors     []string // the body's "errors" list
	StatusCode int
	Kind       ErrorKind
}

// Error returns the provider's error strings joined without a separator
// for KindProvider, and a fixed description for the other kinds.
// A response without errors is described by its status code.
func (e *ProviderError) Error() string {
	switch e.Kind {
	case KindInvalidAPIKey:
		return "sendgrid: " + mailer.ErrInvalidAPIKey.Error()
	case KindInvalidMessage:
		return "sendgrid: " + mailer.ErrInvalidMessage.Error()
	default:
		if len(e.Errors) == 0 {
			return fmt.Sprintf("sendgrid: status %d", e.StatusCode)
		}
		return strings.Join(e.Errors, "")
	}
}

// Is maps kinds onto the shared mailer sentinels.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrRejected:
		return true
	case mailer.ErrInvalidAPIKey:
		return e.Kind == KindInvalidAPIKey
	case mailer.ErrInvalidMessage:
		return e.Kind == KindInvalidMessage
	}
	return false
}

func newProviderError(status int, body Response) *ProviderError {
	errs := body.Errors()
	kind := KindProvider
	if body.Message() == "error" && len(errs) == 1 {
		switch errs[0] {
		case badCredentials:
			kind = KindInvalidAPIKey
		case missingDestination:
			kind = KindInvalidMessage
		}
	}
	return &ProviderError{
		Response:   body,
		Errors:     errs,
		StatusCode: status,
		Kind:       kind,
	}
}
