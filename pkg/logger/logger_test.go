package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, Config{Level: slog.LevelInfo})
	log.Info("email delivered", slog.String("provider", "sendgrid"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "email delivered", rec["msg"])
	require.Equal(t, "sendgrid", rec["provider"])
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, Config{Format: "TEXT", Level: slog.LevelInfo})
	log.Info("email delivered")

	require.Contains(t, buf.String(), `msg="email delivered"`)
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, Config{Level: slog.LevelWarn})
	log.Info("dropped")
	require.Empty(t, buf.String())

	log.Warn("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNewNope_Discards(t *testing.T) {
	t.Parallel()

	log := NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink unavailable")
}

func TestMultiHandler_DeliversToAllHandlers(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	h := newMultiHandler(
		failingHandler{},
		slog.NewJSONHandler(&first, nil),
		slog.NewJSONHandler(&second, nil),
	)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))
	require.Error(t, err)
	require.Contains(t, first.String(), "hello")
	require.Contains(t, second.String(), "hello")
}

func TestMultiHandler_WithAttrsAppliesToEveryHandler(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&first, nil),
		slog.NewJSONHandler(&second, nil),
	)

	slog.New(h).With(slog.String("provider", "mailgun")).Info("sent")

	require.Contains(t, first.String(), `"provider":"mailgun"`)
	require.Contains(t, second.String(), `"provider":"mailgun"`)
}
