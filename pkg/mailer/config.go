package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	DefaultFrom string `env:"MAILER_DEFAULT_FROM"`
}
