package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/redlist"
	"github.com/agentstation/redlist/pkg/catalogs"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding field.
// Unset fields return zero values, the embedded catalog, or io.Discard.
type Mock struct {
	CatalogFunc  func() (*catalogs.Catalog, error)
	ClientFunc   func() (*redlist.Client, error)
	LoggerFunc   func() *zerolog.Logger
	Format       string
	Out          io.Writer
	Err          io.Writer
	VersionValue string
}

// Catalog returns a catalog using the mock function or the embedded catalog.
func (m *Mock) Catalog() (*catalogs.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return catalogs.Default()
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (*redlist.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format.
func (m *Mock) OutputFormat() string {
	return m.Format
}

// Stdout returns Out or io.Discard.
func (m *Mock) Stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return io.Discard
}

// Stderr returns Err or io.Discard.
func (m *Mock) Stderr() io.Writer {
	if m.Err != nil {
		return m.Err
	}
	return io.Discard
}

// Version returns VersionValue or "dev".
func (m *Mock) Version() string {
	if m.VersionValue != "" {
		return m.VersionValue
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
