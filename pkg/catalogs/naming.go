package catalogs

import (
	"strings"
)

// APIPrefix is stripped from paths when deriving endpoint names.
const APIPrefix = "/api/v4/"

// EndpointName derives the catalog name of an operation from its method and
// path, e.g. GET /api/v4/taxa/sis/{sis_id} becomes get_taxa_sis_sis_id.
func EndpointName(method, path string) string {
	p := strings.TrimPrefix(path, APIPrefix)
	p = strings.TrimPrefix(p, "/")
	p = strings.NewReplacer("{", "", "}", "", "/", "_").Replace(p)
	p = strings.TrimRight(p, "_")
	return strings.ToLower(method) + "_" + p
}

// PathParams extracts placeholder names from a path template in order.
func PathParams(path string) []string {
	var params []string
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			return params
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			return params
		}
		params = append(params, path[start+1:start+end])
		path = path[start+end+1:]
	}
}
