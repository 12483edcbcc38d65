package app

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/redlist/internal/cmd/globals"
)

// Config holds the CLI settings loaded from .env files, the environment and
// command-line flags. API credentials are not part of it: the client resolves
// those itself from IUCN_* variables or a JSON config file.
type Config struct {
	// Output format for results (json, yaml, table, wide)
	Output string

	// Config file holding api_token and base_url
	ConfigFile string

	// Alternate catalog YAML
	CatalogFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
	NoColor   bool
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later with UpdateFromFlags)
// 2. Environment variables
// 3. .env.local and .env files
// 4. Defaults
//
// Settings deliberately avoid the IUCN_ prefix, whose presence alone makes
// the environment the client's credential source.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_FORMAT", "auto")
	v.SetDefault("LOG_OUTPUT", "stderr")

	return &Config{
		Output:    v.GetString("REDLIST_OUTPUT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		LogOutput: v.GetString("LOG_OUTPUT"),
		NoColor:   v.GetBool("NO_COLOR"),
	}, nil
}

// UpdateFromFlags applies explicitly set flag values over the loaded config.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	if flags == nil {
		return
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.ConfigFile != "" {
		c.ConfigFile = flags.ConfigFile
	}
	if flags.CatalogFile != "" {
		c.CatalogFile = flags.CatalogFile
	}
	if flags.NoColor {
		c.NoColor = true
	}
}

// loadEnvFiles loads variables from .env.local then .env. godotenv never
// overrides variables that are already set, so .env.local wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
