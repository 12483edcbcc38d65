// Package catalog provides common catalog operations for CLI commands.
package catalog

import (
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/errors"
)

// Load returns the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*catalogs.Catalog, error) {
	if path == "" {
		cat, err := catalogs.Default()
		if err != nil {
			return nil, errors.WrapResource("load", "catalog", "embedded", err)
		}
		return cat, nil
	}

	cat, err := catalogs.LoadFile(path)
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", path, err)
	}
	return cat, nil
}
