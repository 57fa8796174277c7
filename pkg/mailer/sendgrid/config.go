package sendgrid

// Config holds SendGrid credentials and delivery parameters.
type Config struct {
	// SMTPAPI is the x-smtpapi extension header. A string is sent as-is;
	// any other value is JSON-encoded once by New. Nil maps, slices and
	// pointers count as unset.
	SMTPAPI any

	// Params are sent as additional request fields and override fields
	// derived from the message. Scalars are sent as text and lists of
	// scalars ([]string, []any) as repeated fields. Other values are sent
	// as JSON.
	// A "x-smtpapi" entry takes precedence over SMTPAPI; a "return_response"
	// entry acts like ReturnResponse.
	Params map[string]any

	APIUser string `env:"SENDGRID_API_USER"`
	APIKey  string `env:"SENDGRID_API_KEY"`

	// ReturnResponse makes Deliver return the decoded provider response
	// instead of the Sender. It is never sent to SendGrid.
	ReturnResponse bool `env:"SENDGRID_RETURN_RESPONSE"`
}
