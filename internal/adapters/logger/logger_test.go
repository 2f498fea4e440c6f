package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoload/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newCaptured(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_InfoAndWarn(t *testing.T) {
	l, buf := newCaptured(t)

	l.Info("loaded widgets/frobnicate.lua")
	l.Warn("environment has no module path")

	assert.Equal(t,
		"loaded widgets/frobnicate.lua\nwarning: environment has no module path\n",
		buf.String())
}

func TestLogger_Error_RendersCauseChain(t *testing.T) {
	l, buf := newCaptured(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "open failed"), "load failed")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "error: load failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ open failed")
	assert.Contains(t, out, "→ permission denied")
}

func TestLogger_Error_NilIsIgnored(t *testing.T) {
	l, buf := newCaptured(t)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	l, buf := newCaptured(t)
	l.SetJSON(true)

	l.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestCollectErrorMessages(t *testing.T) {
	plain := errors.New("root cause")
	assert.Equal(t, []string{"root cause"}, logger.CollectErrorMessages(plain))

	wrapped := zerr.Wrap(zerr.Wrap(plain, "middle"), "outer")
	assert.Equal(t, []string{"outer", "middle", "root cause"},
		logger.CollectErrorMessages(wrapped))
}

func TestFormatErrorChain(t *testing.T) {
	assert.Equal(t, "single", logger.FormatErrorChain([]string{"single"}))

	got := logger.FormatErrorChain([]string{"outer", "middle", "inner"})
	assert.Equal(t, "outer\n\n  Caused by:\n    → middle\n    → inner", got)
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	handler := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(handler).With("path", "/opt/lib")
	log.Info("resolved", "dir", "plugins")
	assert.Equal(t, "resolved path=/opt/lib dir=plugins\n", buf.String())

	buf.Reset()
	slog.New(handler).WithGroup("load").Info("resolved", "dir", "plugins")
	assert.Equal(t, "resolved load.dir=plugins\n", buf.String())
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	handler := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	log := slog.New(handler)
	log.Info("dropped")
	log.Warn("kept")

	assert.Equal(t, "warning: kept\n", buf.String())
}
