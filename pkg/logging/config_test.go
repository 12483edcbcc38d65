package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/redlist/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "warning", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
}

func TestNewLoggerFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "redlist.log")

	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "INFO",
		Format: "json",
		Output: path,
		Fields: map[string]any{"component": "cli"},
	})
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "shown")
	assert.Contains(t, string(content), `"component":"cli"`)
	assert.NotContains(t, string(content), "hidden")
}

func TestConfigure(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	logging.Configure(&logging.Config{Level: "error", Output: "discard"})
	assert.Equal(t, zerolog.ErrorLevel, logging.Default().GetLevel())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARNING", zerolog.WarnLevel},
		{"warn", zerolog.WarnLevel},
		{"Error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"verbose", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.input))
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARNING", "ERROR", "warn"} {
		assert.True(t, logging.IsValidLevel(level), level)
	}
	for _, level := range []string{"", "trace", "verbose"} {
		assert.False(t, logging.IsValidLevel(level), level)
	}
}
