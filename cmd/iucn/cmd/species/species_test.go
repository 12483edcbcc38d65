package species

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/redlist"
	"github.com/agentstation/redlist/internal/appcontext"
	"github.com/agentstation/redlist/internal/tabular"
)

func redListServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v4/red_list_categories/":
			_, _ = w.Write([]byte(`{"red_list_categories":[{"code":"VU","version":"3.1","description":{"en":"Vulnerable"}}]}`))
		case "/api/v4/taxa/scientific_name":
			if r.URL.Query().Get("genus_name") != "Panthera" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`{
  "taxon": {"scientific_name": "Panthera leo", "family_name": "FELIDAE", "common_names": [{"name": "Lion", "main": true}]},
  "assessments": [{"assessment_id": 2222, "latest": true, "red_list_category_code": "VU", "year_published": "2023", "url": "https://example.org/lion"}]
}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newApp(t *testing.T, server *httptest.Server, out, errOut *bytes.Buffer) *appcontext.Mock {
	t.Helper()
	return &appcontext.Mock{
		Format: "table",
		Out:    out,
		Err:    errOut,
		ClientFunc: func() (*redlist.Client, error) {
			env := []string{"IUCN_API_TOKEN=tok", "IUCN_BASE_URL=" + server.URL}
			return redlist.New(
				redlist.WithEnviron(func() []string { return env }),
				redlist.WithRetry(0, time.Millisecond, time.Millisecond),
			)
		},
	}
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,scientific_name\n1,Panthera leo\n2,Solo\n3,Foo bar\n"), 0o600))
	return path
}

func TestCheckPrintsTable(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewCommand(newApp(t, redListServer(t), &out, &errOut))
	cmd.SetArgs([]string{"check", writeInput(t)})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Panthera leo")
	assert.Contains(t, out.String(), "Vulnerable")
	assert.Contains(t, out.String(), "Foo bar")
	assert.NotContains(t, out.String(), "Solo")
	assert.Empty(t, errOut.String())
}

func TestCheckPipedOutputIsJSON(t *testing.T) {
	var out bytes.Buffer
	app := newApp(t, redListServer(t), &out, &bytes.Buffer{})
	app.Format = ""

	cmd := NewCommand(app)
	cmd.SetArgs([]string{"check", writeInput(t)})
	require.NoError(t, cmd.Execute())

	var results []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Panthera leo", results[0]["scientific_name"])
	assert.Equal(t, true, results[0]["is_threatened"])
	assert.Equal(t, "error", results[1]["status"])
}

func TestCheckWritesOutputFile(t *testing.T) {
	var out, errOut bytes.Buffer
	dest := filepath.Join(t.TempDir(), "results.csv")

	cmd := NewCommand(newApp(t, redListServer(t), &out, &errOut))
	cmd.SetArgs([]string{"check", writeInput(t), "-o", dest, "-v"})
	require.NoError(t, cmd.Execute())

	result, err := tabular.Read(dest)
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	assert.Equal(t, "Panthera leo", result.Cell(0, result.Column("scientific_name")))
	assert.Equal(t, "True", result.Cell(0, result.Column("is_threatened")))
	assert.Equal(t, "Error", result.Cell(1, result.Column("conservation_status")))

	progress := errOut.String()
	assert.Contains(t, progress, "Loaded 3 rows")
	assert.Contains(t, progress, "Row 2: Skipping invalid species name")
	assert.Contains(t, progress, "Row 1: Checking Panthera leo...")
	assert.Contains(t, progress, "Threatened species (1)")
	assert.Contains(t, progress, "Panthera leo: Vulnerable (2023)")
	assert.Contains(t, progress, "Results saved to: "+dest)
	assert.Empty(t, strings.TrimSpace(out.String()))
}

func TestCheckMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,label\n1,x\n"), 0o600))

	var out, errOut bytes.Buffer
	cmd := NewCommand(newApp(t, redListServer(t), &out, &errOut))
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"check", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found: id, label")
}

func TestCheckUnsupportedInput(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewCommand(newApp(t, redListServer(t), &out, &errOut))
	cmd.SetArgs([]string{"check", "species.json"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
