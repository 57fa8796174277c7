// Package logger builds the structured loggers used by multimail programs.
//
// Loggers are plain *slog.Logger values. New selects a JSON or text handler
// writing to stdout and, when a Sentry DSN is configured, fans records out to
// Sentry as well:
//
//	log := logger.New(logger.Config{
//		Level:     slog.LevelInfo,
//		Format:    "json",
//		SentryDSN: os.Getenv("SENTRY_DSN"),
//	})
//	log.Info("email delivered", slog.String("provider", "sendgrid"))
//
// Error records become Sentry issues; warnings are kept as Sentry logs.
// If the DSN is empty or Sentry fails to initialize, logging continues on
// stdout only. Sentry delivers in the background, so programs that exit
// soon after logging call Flush first:
//
//	defer logger.Flush(2 * time.Second)
//
// Libraries in this module never log on their own unless given a logger;
// NewNope is the silent default they fall back to.
package logger
