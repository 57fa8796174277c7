package mailgun

// Config holds Mailgun configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"MAILGUN_API_KEY"`
	Domain      string `env:"MAILGUN_DOMAIN"`
	SenderEmail string `env:"MAILGUN_FROM_EMAIL"`
	SenderName  string `env:"MAILGUN_FROM_NAME"`
	// APIBase overrides the API host, e.g. https://api.eu.mailgun.net/v3 for EU accounts.
	APIBase string `env:"MAILGUN_API_BASE"`
}
