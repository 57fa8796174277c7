// Command mailsend delivers a single message file through a configured provider.
//
// Usage:
//
//	mailsend [-response] [-attach file]... message.md
//
// The message file is YAML frontmatter followed by a markdown body. Provider
// and credentials come from the environment (MAILSEND_PROVIDER, SENDGRID_*,
// RESEND_*, MAILGUN_*); logs go to stdout as configured by LOG_* and SENTRY_*.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/multimail/pkg/logger"
	"github.com/dmitrymomot/multimail/pkg/mailer"
	"github.com/dmitrymomot/multimail/pkg/mailer/mailgun"
	"github.com/dmitrymomot/multimail/pkg/mailer/resend"
	"github.com/dmitrymomot/multimail/pkg/mailer/sendgrid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], nil, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "mailsend:", err)
		stop()
		os.Exit(1)
	}
}

// flushTimeout bounds how long the command waits for Sentry on exit.
const flushTimeout = 2 * time.Second

// attachFlag collects repeated -attach values.
type attachFlag []string

func (a *attachFlag) String() string { return strings.Join(*a, ",") }

func (a *attachFlag) Set(v string) error {
	*a = append(*a, v)
	return nil
}

// run executes the command. A nil environ reads the process environment.
func run(ctx context.Context, args []string, environ map[string]string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mailsend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	printResponse := fs.Bool("response", false, "print the provider response (sendgrid only)")
	var attachments attachFlag
	fs.Var(&attachments, "attach", "attach a file (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: mailsend [-response] [-attach file]... message.md")
	}

	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	log := logger.New(cfg.Log).With(slog.String("provider", cfg.Provider))
	defer logger.Flush(flushTimeout)

	email, err := loadEmail(fs.Arg(0), attachments)
	if err != nil {
		return err
	}

	sender, recorder, err := newSender(cfg, *printResponse)
	if err != nil {
		return err
	}

	m := mailer.New(sender, cfg.Mailer, mailer.WithLogger(log))
	if err := m.Send(ctx, email); err != nil {
		return err
	}

	if recorder != nil && recorder.last != nil {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recorder.last); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return nil
}

func loadEmail(path string, attachments []string) (*mailer.Email, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}

	email, err := mailer.ParseDraft(content)
	if err != nil {
		return nil, fmt.Errorf("parse message %s: %w", path, err)
	}

	for _, p := range attachments {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read attachment: %w", err)
		}
		email.Attachments = append(email.Attachments, mailer.Attachment{
			Filename:    filepath.Base(p),
			ContentType: mime.TypeByExtension(filepath.Ext(p)),
			Content:     data,
		})
	}
	return email, nil
}

func newSender(cfg config, returnResponse bool) (mailer.Sender, *responseRecorder, error) {
	switch strings.ToLower(cfg.Provider) {
	case "sendgrid":
		sgCfg := sendgrid.Config{
			APIUser:        cfg.SendGrid.APIUser,
			APIKey:         cfg.SendGrid.APIKey,
			ReturnResponse: returnResponse,
		}
		if cfg.SendGrid.SMTPAPI != "" {
			sgCfg.SMTPAPI = cfg.SendGrid.SMTPAPI
		}
		if len(cfg.SendGrid.Params) > 0 {
			sgCfg.Params = make(map[string]any, len(cfg.SendGrid.Params))
			for k, v := range cfg.SendGrid.Params {
				sgCfg.Params[k] = v
			}
		}

		var opts []sendgrid.Option
		if cfg.SendGrid.Endpoint != "" {
			opts = append(opts, sendgrid.WithEndpoint(cfg.SendGrid.Endpoint))
		}
		s, err := sendgrid.New(sgCfg, opts...)
		if err != nil {
			return nil, nil, err
		}
		rec := &responseRecorder{sender: s}
		return rec, rec, nil

	case "resend":
		s, err := resend.New(cfg.Resend)
		return s, nil, err

	case "mailgun":
		s, err := mailgun.New(cfg.Mailgun)
		return s, nil, err

	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// responseRecorder keeps the last SendGrid response for printing.
type responseRecorder struct {
	sender *sendgrid.Sender
	last   sendgrid.Response
}

func (r *responseRecorder) Send(ctx context.Context, email *mailer.Email) error {
	res, err := r.sender.Deliver(ctx, email)
	if err != nil {
		return err
	}
	r.last = res.Response
	return nil
}
