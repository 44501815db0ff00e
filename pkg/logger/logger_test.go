package logger_test

import (
	"log/slog"
	"testing"

	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, logger.ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew(t *testing.T) {
	l := logger.New(&config.LogConfig{Format: "json", Level: "debug"})
	assert.True(t, l.Enabled(t.Context(), slog.LevelDebug))

	l = logger.New(&config.LogConfig{Format: "text", Level: "error"})
	assert.False(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, l.Enabled(t.Context(), slog.LevelError))
}
