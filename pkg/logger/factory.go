package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger writing to stdout, with Sentry fan-out when
// cfg.SentryDSN is set.
func New(cfg Config) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	handler := newStreamHandler(w, cfg)
	if cfg.SentryDSN == "" {
		return slog.New(handler)
	}

	sentryHandler, err := newSentryHandler(cfg)
	if err != nil {
		log := slog.New(handler)
		log.Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return log
	}

	return slog.New(newMultiHandler(handler, sentryHandler))
}

func newStreamHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
