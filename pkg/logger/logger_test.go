package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetcommerce/intake/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := logger.NewWithWriter(&buf, "info", "text")
		l.Info("item intaken")

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "item intaken")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := logger.NewWithWriter(&buf, "info", "json")
		l.Info("item intaken")

		assert.Contains(t, buf.String(), `"level":"INFO"`)
		assert.Contains(t, buf.String(), `"msg":"item intaken"`)
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := logger.NewWithWriter(&buf, "warn", "text")
		l.Info("quiet")
		assert.Empty(t, buf.String())
		l.Warn("loud")
		assert.NotEmpty(t, buf.String())
	})
}

func TestNew(t *testing.T) {
	t.Parallel()
	require.NotNil(t, logger.New("debug", "json"))
}
