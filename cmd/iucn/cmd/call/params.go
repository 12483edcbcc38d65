package call

import (
	"fmt"
	"strings"

	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/errors"
)

// ParseParams turns key=value flag entries into a map. Later entries win and
// entries without "=" are ignored.
func ParseParams(entries []string) map[string]string {
	params := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		params[key] = value
	}
	return params
}

// BuildArgs binds positional values to the endpoint's path parameters in
// declared order, then applies key=value entries on top.
func BuildArgs(ep *catalogs.Endpoint, positionals, entries []string) (*catalogs.Args, error) {
	if len(positionals) > len(ep.PathParams) {
		return nil, errors.NewValidationError("args", positionals,
			fmt.Sprintf("%s takes %d positional parameter(s) %v, got %d",
				ep.Name, len(ep.PathParams), ep.PathParams, len(positionals)))
	}

	args := new(catalogs.Args)
	for i, value := range positionals {
		args.SetString(ep.PathParams[i], value)
	}

	// Apply in entry order so repeated keys keep their first position.
	seen := make(map[string]bool, len(entries))
	params := ParseParams(entries)
	for _, entry := range entries {
		key, _, ok := strings.Cut(entry, "=")
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		args.SetString(key, params[key])
	}
	return args, nil
}

// wantsHelp reports whether a literal help token follows the endpoint name.
func wantsHelp(positionals []string) bool {
	for _, p := range positionals {
		if strings.EqualFold(p, "help") {
			return true
		}
	}
	return false
}
