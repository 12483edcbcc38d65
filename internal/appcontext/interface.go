// Package appcontext provides the shared application context interface
// used by all commands. Commands accept it rather than the concrete App so
// they can be tested against Mock.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/redlist"
	"github.com/agentstation/redlist/pkg/catalogs"
)

// Interface defines the application context that commands need.
type Interface interface {
	// Catalog returns the active endpoint catalog without resolving credentials.
	Catalog() (*catalogs.Catalog, error)

	// Client returns the Red List client, creating it lazily on first use.
	Client() (*redlist.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the requested output format, or "" when unset.
	OutputFormat() string

	// Stdout is where command results are written.
	Stdout() io.Writer

	// Stderr is where progress and diagnostics are written.
	Stderr() io.Writer

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
