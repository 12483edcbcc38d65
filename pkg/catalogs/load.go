package catalogs

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/redlist/pkg/errors"
)

// document is the on-disk layout of a catalog file.
type document struct {
	Endpoints []Endpoint `yaml:"endpoints"`
}

// Load parses a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	return parse(data, "")
}

// LoadFile reads and parses a YAML catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied catalog path
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, file string) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}
	if len(doc.Endpoints) == 0 {
		return nil, errors.NewParseError("yaml", file, "catalog has no endpoints", nil)
	}
	return New(doc.Endpoints...)
}

// Marshal encodes the catalog in the same YAML layout Load accepts.
func Marshal(c *Catalog) ([]byte, error) {
	data, err := yaml.Marshal(document{Endpoints: c.List()})
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return data, nil
}
