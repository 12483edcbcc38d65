package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/redlist"
	"github.com/agentstation/redlist/pkg/errors"
	"github.com/agentstation/redlist/pkg/logging"
)

// newTestApp builds an App whose client talks to server through injected
// IUCN_* variables.
func newTestApp(t *testing.T, server *httptest.Server) (*App, *bytes.Buffer) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDLIST_OUTPUT", "")

	var out bytes.Buffer
	env := []string{"IUCN_API_TOKEN=tok"}
	if server != nil {
		env = append(env, "IUCN_BASE_URL="+server.URL)
	}
	logger := logging.NewTestLogger(t)

	a, err := New("1.2.3", "abc123", "2025-01-01", "test",
		WithOutput(&out, &bytes.Buffer{}),
		WithLogger(logger.Logger),
		WithClientOptions(
			redlist.WithEnviron(func() []string { return env }),
			redlist.WithHomeDir(func() (string, error) { return t.TempDir(), nil }),
			redlist.WithRetry(3, time.Millisecond, 2*time.Millisecond),
		),
	)
	require.NoError(t, err)
	return a, &out
}

func TestNew(t *testing.T) {
	a, _ := newTestApp(t, nil)
	assert.Equal(t, "1.2.3", a.Version())
	assert.Equal(t, "abc123", a.Commit())
	assert.Equal(t, "2025-01-01", a.Date())
	assert.Equal(t, "test", a.BuiltBy())
	assert.NotNil(t, a.Logger())
	assert.NotNil(t, a.Config())
}

func TestClientIsReused(t *testing.T) {
	a, _ := newTestApp(t, nil)

	c1, err := a.Client()
	require.NoError(t, err)
	c2, err := a.Client()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, "tok", c1.Config().APIToken)

	cat, err := a.Catalog()
	require.NoError(t, err)
	assert.Same(t, cat, c1.Catalog())
}

func TestExecuteCallRetriesThenPrints(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"sis_id":22823}`))
	}))
	defer server.Close()

	a, out := newTestApp(t, server)
	err := a.Execute(context.Background(), []string{"get_taxa_sis_sis_id", "22823"})
	require.NoError(t, err)

	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, "{\n  \"sis_id\": 22823\n}\n", out.String())
}

func TestExecuteOutputFormats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":"US"}`))
	}))
	defer server.Close()

	a, out := newTestApp(t, server)
	require.NoError(t, a.Execute(context.Background(), []string{"get_countries_code", "US", "-o", "yaml"}))
	assert.Equal(t, "code: US\n", out.String())

	a, out = newTestApp(t, server)
	require.NoError(t, a.Execute(context.Background(), []string{"get_countries_code", "US", "-o", "YAML"}))
	assert.Equal(t, "code: US\n", out.String())
	assert.Equal(t, "yaml", a.OutputFormat())

	a, _ = newTestApp(t, server)
	err := a.Execute(context.Background(), []string{"get_countries_code", "US", "-o", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestExecuteErrors(t *testing.T) {
	a, _ := newTestApp(t, nil)
	err := a.Execute(context.Background(), []string{"get_nonexistent"})
	assert.True(t, errors.IsUnknownEndpoint(err))

	a, _ = newTestApp(t, nil)
	err = a.Execute(context.Background(), []string{"get_countries_code"})
	assert.True(t, errors.IsMissingParameter(err))
}

func TestExecuteAlternateCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`endpoints:
  - name: get_ping
    method: GET
    path: /ping
`), 0o600))

	a, out := newTestApp(t, nil)
	require.NoError(t, a.Execute(context.Background(), []string{"--catalog", path, "--list-endpoints"}))
	assert.Equal(t, "Available endpoints:\n  get_ping (GET) - No summary\n", out.String())
}

func TestExecuteVersion(t *testing.T) {
	a, out := newTestApp(t, nil)
	require.NoError(t, a.Execute(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "iucn version 1.2.3\n")
	assert.Contains(t, out.String(), "commit: abc123\n")
}

func TestExecuteLogLevelFlag(t *testing.T) {
	a, _ := newTestApp(t, nil)
	require.NoError(t, a.Execute(context.Background(), []string{"--log-level", "DEBUG", "version"}))
	assert.Equal(t, "DEBUG", a.Config().LogLevel)
	assert.Equal(t, "debug", a.Logger().GetLevel().String())
}
