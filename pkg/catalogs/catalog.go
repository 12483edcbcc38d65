// Package catalogs describes the operations of the IUCN Red List API.
//
// A Catalog is an immutable, name-indexed set of Endpoint descriptions. The
// default catalog is embedded in the binary and covers the v4 API; alternate
// catalogs can be loaded from YAML or generated from an OpenAPI document.
//
// Example usage:
//
//	cat, err := catalogs.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ep, err := cat.Get("get_taxa_sis_sis_id")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	args := new(catalogs.Args).SetInt("sis_id", 22823)
//	resolved, err := ep.Resolve(args)
package catalogs

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/redlist/internal/embedded"
	"github.com/agentstation/redlist/pkg/errors"
)

var validate = validator.New()

// Catalog is a read-only set of endpoints indexed by name.
// It is safe for concurrent use.
type Catalog struct {
	endpoints map[string]*Endpoint
	names     []string
}

// New builds a catalog from endpoint descriptions.
// Every endpoint is validated and names must be unique.
func New(endpoints ...Endpoint) (*Catalog, error) {
	c := &Catalog{
		endpoints: make(map[string]*Endpoint, len(endpoints)),
		names:     make([]string, 0, len(endpoints)),
	}

	for i := range endpoints {
		ep := endpoints[i]
		if err := Validate(&ep); err != nil {
			return nil, err
		}
		if _, exists := c.endpoints[ep.Name]; exists {
			return nil, errors.NewValidationError("name", ep.Name, "duplicate endpoint name")
		}
		c.endpoints[ep.Name] = &ep
		c.names = append(c.names, ep.Name)
	}

	slices.Sort(c.names)
	return c, nil
}

// Validate checks an endpoint's struct constraints and that every path
// parameter has a placeholder in the path template.
func Validate(ep *Endpoint) error {
	if err := validate.Struct(ep); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.NewValidationError(fe.Namespace(), fe.Value(),
				fmt.Sprintf("endpoint %q failed %q constraint", ep.Name, fe.Tag()))
		}
		return errors.WrapValidation(ep.Name, err)
	}
	for _, p := range ep.PathParams {
		if !ep.hasPlaceholder(p) {
			return errors.NewValidationError("path_params", p,
				fmt.Sprintf("endpoint %q path %s has no placeholder {%s}", ep.Name, ep.Path, p))
		}
	}
	for _, p := range PathParams(ep.Path) {
		if !slices.Contains(ep.PathParams, p) {
			return errors.NewValidationError("path", ep.Path,
				fmt.Sprintf("endpoint %q placeholder {%s} is not a declared path parameter", ep.Name, p))
		}
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded Red List v4 catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		data, err := embedded.FS.ReadFile(embedded.CatalogPath)
		if err != nil {
			defaultErr = errors.WrapIO("read", embedded.CatalogPath, err)
			return
		}
		defaultCatalog, defaultErr = parse(data, embedded.CatalogPath)
	})
	return defaultCatalog, defaultErr
}

// Get returns the endpoint registered under name.
func (c *Catalog) Get(name string) (*Endpoint, error) {
	ep, ok := c.Lookup(name)
	if !ok {
		return nil, errors.NewUnknownEndpointError(name)
	}
	return ep, nil
}

// Lookup returns the endpoint registered under name and whether it exists.
func (c *Catalog) Lookup(name string) (*Endpoint, bool) {
	ep, ok := c.endpoints[name]
	return ep, ok
}

// Names returns all endpoint names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// List returns copies of all endpoints sorted by name.
func (c *Catalog) List() []Endpoint {
	out := make([]Endpoint, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, *c.endpoints[name])
	}
	return out
}

// Len returns the number of endpoints.
func (c *Catalog) Len() int {
	return len(c.names)
}

// ByTag returns the endpoints carrying tag, sorted by name.
func (c *Catalog) ByTag(tag string) []Endpoint {
	var out []Endpoint
	for _, name := range c.names {
		ep := c.endpoints[name]
		if slices.Contains(ep.Tags, tag) {
			out = append(out, *ep)
		}
	}
	return out
}
