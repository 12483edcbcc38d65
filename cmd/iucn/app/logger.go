package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/redlist/pkg/logging"
)

// defaultLogLevel applies when neither --log-level nor LOG_LEVEL is set.
const defaultLogLevel = "warning"

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag
//  2. LOG_LEVEL environment variable
//  3. Default (warning)
func NewLogger(config *Config) zerolog.Logger {
	return logging.NewLoggerFromConfig(&logging.Config{
		Level:   determineLogLevel(config),
		Format:  config.LogFormat,
		Output:  config.LogOutput,
		NoColor: config.NoColor,
	})
}

// determineLogLevel validates the configured level, falling back to the
// default with a warning on stderr.
func determineLogLevel(config *Config) string {
	if config.LogLevel == "" {
		return defaultLogLevel
	}
	if !logging.IsValidLevel(config.LogLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, defaultLogLevel)
		return defaultLogLevel
	}
	return strings.ToLower(config.LogLevel)
}
