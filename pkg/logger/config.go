package logger

import "log/slog"

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Format            string     `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"
	SentryDSN         string     `env:"SENTRY_DSN"`
	SentryEnvironment string     `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Level             slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}
