// Package app provides the application context and dependency management
// for the iucn CLI. It centralizes configuration, logging, and the lazily
// created Red List client.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/redlist"
	"github.com/agentstation/redlist/internal/cmd/catalog"
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/errors"
)

// App represents the iucn application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer

	// Extra client options, used by tests to inject environment and transport.
	clientOpts []redlist.Option

	// Lazily created, then reused
	mu      sync.Mutex
	catalog *catalogs.Catalog
	client  *redlist.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the requested output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// Stdout returns the writer for command results.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Stderr returns the writer for progress and diagnostics.
func (a *App) Stderr() io.Writer {
	return a.stderr
}

// Catalog returns the embedded catalog, or the --catalog file when given.
func (a *App) Catalog() (*catalogs.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalogLocked()
}

func (a *App) catalogLocked() (*catalogs.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	cat, err := catalog.Load(a.config.CatalogFile)
	if err != nil {
		return nil, err
	}
	a.catalog = cat
	return cat, nil
}

// Client returns the Red List client, creating it on first use. Credentials
// are resolved at that point, so commands that never call the API never read
// the config file.
func (a *App) Client() (*redlist.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	cat, err := a.catalogLocked()
	if err != nil {
		return nil, err
	}

	opts := []redlist.Option{
		redlist.WithCatalog(cat),
		redlist.WithLogger(a.logger),
	}
	if a.config.ConfigFile != "" {
		opts = append(opts, redlist.WithConfigFile(a.config.ConfigFile))
	}
	opts = append(opts, a.clientOpts...)

	client, err := redlist.New(opts...)
	if err != nil {
		return nil, err
	}

	logger := a.logger
	client.OnCallComplete(func(e redlist.CallEvent) {
		logger.Debug().
			Str("request_id", e.RequestID).
			Str("endpoint", e.Endpoint).
			Dur("duration", e.Duration).
			Bool("ok", e.Err == nil).
			Msg("Call complete")
	})

	a.client = client
	return client, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command results and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

// WithClientOptions adds options used when the client is created.
func WithClientOptions(opts ...redlist.Option) Option {
	return func(a *App) error {
		a.clientOpts = append(a.clientOpts, opts...)
		return nil
	}
}
