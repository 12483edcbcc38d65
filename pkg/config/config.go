// Package config resolves the credential and base URL a Red List client uses.
//
// Exactly one source wins, in this order, and sources are never merged:
//
//  1. Environment: any variable starting with IUCN_ makes the environment
//     authoritative. IUCN_API_TOKEN and IUCN_BASE_URL are read from it.
//  2. Parameters: non-empty values passed by the caller are used verbatim.
//  3. File: a JSON object at the explicit config path, or else at
//     ~/.iucn_client.json, when the file exists.
//
// When nothing matches the config is empty and requests go out without an
// Authorization header.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/redlist/pkg/constants"
	"github.com/agentstation/redlist/pkg/errors"
	"github.com/agentstation/redlist/pkg/logging"
)

// Source identifies where a Config came from.
type Source string

// String returns the string representation of a Source.
func (s Source) String() string {
	return string(s)
}

// Configuration sources in priority order.
const (
	SourceEnvironment Source = "environment"
	SourceParameters  Source = "parameters"
	SourceFile        Source = "file"
	SourceNone        Source = "none"
)

// Parameter keys accepted from callers and config files.
const (
	KeyAPIToken = "api_token"
	KeyBaseURL  = "base_url"
)

// Config is the resolved client configuration. It is read-only after Resolve.
type Config struct {
	APIToken string `json:"api_token,omitempty" mapstructure:"api_token"`
	BaseURL  string `json:"base_url" mapstructure:"base_url"`
	Source   Source `json:"source"`
	File     string `json:"file,omitempty"` // Path read when Source is SourceFile
}

// HasToken reports whether a credential was resolved.
func (c *Config) HasToken() bool {
	return c.APIToken != ""
}

// URL joins the base URL and an API path.
func (c *Config) URL(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

// ResolveOptions controls Resolve. The zero value reads the process
// environment and the real home directory.
type ResolveOptions struct {
	// ConfigFile is an explicit JSON config path checked before the default file.
	ConfigFile string

	// Params are caller-supplied overrides keyed by api_token and base_url.
	Params map[string]string

	// Environ returns KEY=value pairs. Defaults to os.Environ.
	Environ func() []string

	// HomeDir locates the default config file. Defaults to os.UserHomeDir.
	HomeDir func() (string, error)

	// Logger receives source selection messages. Defaults to the package logger.
	Logger *zerolog.Logger
}

// Resolve produces the client configuration from exactly one source.
func Resolve(opts ResolveOptions) (*Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	cfg, err := resolve(opts, logger)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultBaseURL
	}
	return cfg, nil
}

func resolve(opts ResolveOptions, logger *zerolog.Logger) (*Config, error) {
	if env, ok := fromEnvironment(opts.environ()); ok {
		logger.Info().Msg("Using environment variable configuration")
		if !env.HasToken() {
			logger.Warn().
				Str("variable", constants.EnvAPIToken).
				Msg("IUCN_ environment variables are set but the API token is missing")
		}
		return env, nil
	}

	if params, ok := fromParams(opts.Params); ok {
		logger.Info().Msg("Using provided configuration parameters")
		return params, nil
	}

	for _, path := range opts.candidateFiles(logger) {
		if !exists(path) {
			continue
		}
		logger.Info().Str("file", path).Msg("Loading configuration from file")
		return fromFile(path)
	}

	logger.Warn().Msg("No configuration found. API token required for authenticated endpoints.")
	return &Config{Source: SourceNone}, nil
}

func (o ResolveOptions) environ() []string {
	if o.Environ != nil {
		return o.Environ()
	}
	return os.Environ()
}

// candidateFiles lists the explicit path then the default home path.
func (o ResolveOptions) candidateFiles(logger *zerolog.Logger) []string {
	var files []string
	if o.ConfigFile != "" {
		files = append(files, o.ConfigFile)
	}

	homeDir := o.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	home, err := homeDir()
	if err != nil {
		logger.Debug().Err(err).Msg("Home directory unavailable, skipping default config file")
		return files
	}
	return append(files, filepath.Join(home, constants.DefaultConfigFileName))
}

func fromEnvironment(environ []string) (*Config, bool) {
	found := false
	cfg := &Config{Source: SourceEnvironment}
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, constants.EnvPrefix) {
			continue
		}
		found = true
		switch key {
		case constants.EnvAPIToken:
			cfg.APIToken = value
		case constants.EnvBaseURL:
			cfg.BaseURL = value
		}
	}
	return cfg, found
}

func fromParams(params map[string]string) (*Config, bool) {
	cfg := &Config{
		APIToken: params[KeyAPIToken],
		BaseURL:  params[KeyBaseURL],
		Source:   SourceParameters,
	}
	if cfg.APIToken == "" && cfg.BaseURL == "" {
		return nil, false
	}
	return cfg, true
}

func fromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigFileError(path, err)
	}
	return &Config{
		APIToken: v.GetString(KeyAPIToken),
		BaseURL:  v.GetString(KeyBaseURL),
		Source:   SourceFile,
		File:     path,
	}, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
