package redlist

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/redlist/internal/transport"
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/config"
	"github.com/agentstation/redlist/pkg/errors"
)

// Option is a function that configures a Client
type Option func(*options) error

// options holds construction settings. Config resolution happens once, in New.
type options struct {
	resolve   config.ResolveOptions
	catalog   *catalogs.Catalog
	logger    *zerolog.Logger
	transport transport.Settings
}

// defaults returns the options used when none are given.
func defaults() *options {
	return &options{
		resolve:   config.ResolveOptions{Params: map[string]string{}},
		transport: transport.DefaultSettings(),
	}
}

// apply applies the given options, stopping at the first error.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithConfigFile sets the JSON config file consulted when neither the
// environment nor explicit parameters supply a configuration.
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.resolve.ConfigFile = path
		return nil
	}
}

// WithAPIToken supplies the API token as an explicit parameter.
func WithAPIToken(token string) Option {
	return func(o *options) error {
		o.resolve.Params[config.KeyAPIToken] = token
		return nil
	}
}

// WithBaseURL supplies the base URL as an explicit parameter.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		o.resolve.Params[config.KeyBaseURL] = baseURL
		return nil
	}
}

// WithParams supplies explicit configuration parameters keyed by
// api_token and base_url.
func WithParams(params map[string]string) Option {
	return func(o *options) error {
		for k, v := range params {
			if k != config.KeyAPIToken && k != config.KeyBaseURL {
				return errors.NewValidationError("params", k, "unknown configuration parameter")
			}
			o.resolve.Params[k] = v
		}
		return nil
	}
}

// WithCatalog replaces the embedded endpoint catalog.
func WithCatalog(catalog *catalogs.Catalog) Option {
	return func(o *options) error {
		if catalog == nil {
			return errors.NewValidationError("catalog", nil, "catalog cannot be nil")
		}
		o.catalog = catalog
		return nil
	}
}

// WithLogger sets the logger used for config resolution, dispatch and retries.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithHTTPClient sets the underlying HTTP client. Its Timeout takes the
// place of WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		o.transport.HTTPClient = client
		return nil
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "timeout must be positive")
		}
		o.transport.Timeout = timeout
		return nil
	}
}

// WithRetry sets the number of retries and the backoff bounds.
func WithRetry(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(o *options) error {
		if maxRetries < 0 {
			return errors.NewValidationError("retries", maxRetries, "retries cannot be negative")
		}
		if waitMin > waitMax {
			return errors.NewValidationError("retry_wait", waitMin, "minimum wait exceeds maximum wait")
		}
		o.transport.RetryMax = maxRetries
		o.transport.RetryWaitMin = waitMin
		o.transport.RetryWaitMax = waitMax
		return nil
	}
}

// WithEnviron replaces os.Environ for config resolution.
func WithEnviron(environ func() []string) Option {
	return func(o *options) error {
		o.resolve.Environ = environ
		return nil
	}
}

// WithHomeDir replaces os.UserHomeDir for locating the default config file.
func WithHomeDir(homeDir func() (string, error)) Option {
	return func(o *options) error {
		o.resolve.HomeDir = homeDir
		return nil
	}
}
