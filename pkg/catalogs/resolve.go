package catalogs

import (
	"net/url"
	"strings"

	"github.com/agentstation/redlist/pkg/errors"
)

// Resolved is an endpoint bound to concrete arguments.
type Resolved struct {
	Endpoint *Endpoint
	Path     string     // Path with every placeholder substituted
	Query    url.Values // Declared query parameters that were supplied
	Dropped  []string   // Supplied names the endpoint does not declare
}

// Resolve binds args to the endpoint.
//
// Path parameters are checked in declared order and the first missing one is
// reported. Values are substituted verbatim. Query parameters are then checked
// in declared order and the first required one that is missing is reported.
// Supplied names that are neither path nor query parameters are returned in
// Dropped and never sent.
func (e *Endpoint) Resolve(args *Args) (*Resolved, error) {
	pairs := make([]string, 0, 2*len(e.PathParams))
	for _, name := range e.PathParams {
		v, ok := args.Get(name)
		if !ok {
			return nil, errors.NewMissingPathParameterError(e.Name, name)
		}
		pairs = append(pairs, placeholder(name), v.String())
	}
	// One replacer pass never rescans substituted text.
	path := strings.NewReplacer(pairs...).Replace(e.Path)

	query := url.Values{}
	for _, q := range e.QueryParams {
		v, ok := args.Get(q.Name)
		if !ok {
			if q.Required {
				return nil, errors.NewMissingQueryParameterError(e.Name, q.Name)
			}
			continue
		}
		query.Set(q.Name, v.String())
	}

	var dropped []string
	for _, name := range args.Keys() {
		if !e.IsParam(name) {
			dropped = append(dropped, name)
		}
	}

	return &Resolved{
		Endpoint: e,
		Path:     path,
		Query:    query,
		Dropped:  dropped,
	}, nil
}
