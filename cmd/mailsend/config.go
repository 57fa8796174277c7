package main

import (
	"github.com/dmitrymomot/multimail/pkg/logger"
	"github.com/dmitrymomot/multimail/pkg/mailer"
	"github.com/dmitrymomot/multimail/pkg/mailer/mailgun"
	"github.com/dmitrymomot/multimail/pkg/mailer/resend"
)

// config is read from the environment.
type config struct {
	Provider string `env:"MAILSEND_PROVIDER" envDefault:"sendgrid"`
	Mailer   mailer.Config
	Log      logger.Config
	SendGrid sendgridConfig
	Resend   resend.Config
	Mailgun  mailgun.Config
}

type sendgridConfig struct {
	APIUser  string `env:"SENDGRID_API_USER"`
	APIKey   string `env:"SENDGRID_API_KEY"`
	SMTPAPI  string `env:"SENDGRID_SMTPAPI"`
	Endpoint string `env:"SENDGRID_ENDPOINT"`
	// Params are extra request fields in key=value form, e.g. "category=welcome".
	Params map[string]string `env:"SENDGRID_PARAMS" envSeparator:"," envKeyValSeparator:"="`
}
