// Package openapi builds endpoint catalogs from OpenAPI 3 documents.
package openapi

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/errors"
)

// MaxDescription is the longest description kept, in runes, before truncation.
const MaxDescription = 200

// Load reads an OpenAPI document from a file path or an http(s) URL.
// Swagger 2.0 documents are converted to OpenAPI 3.
func Load(ctx context.Context, src string) (*openapi3.T, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errors.NewValidationError("openapi", src, "source is empty")
	}

	var (
		data []byte
		err  error
	)
	if u, perr := url.Parse(src); perr == nil && (u.Scheme == "http" || u.Scheme == "https") {
		loader := openapi3.NewLoader()
		loader.Context = ctx
		data, err = openapi3.DefaultReadFromURI(loader, u)
	} else {
		data, err = os.ReadFile(src) //nolint:gosec // user-supplied document path
	}
	if err != nil {
		return nil, errors.WrapIO("read", src, err)
	}

	doc, err := LoadData(ctx, data)
	if err != nil {
		var perr *errors.ParseError
		if errors.As(err, &perr) {
			perr.File = src
		}
		return nil, err
	}
	return doc, nil
}

// LoadData parses an OpenAPI 3 or Swagger 2.0 document held in memory.
func LoadData(ctx context.Context, data []byte) (*openapi3.T, error) {
	version, err := detectVersion(data)
	if err != nil {
		return nil, err
	}

	if version == 2 {
		return convertV2(data)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, errors.WrapParse("openapi", "", err)
	}
	return doc, nil
}

func detectVersion(data []byte) (int, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return 0, errors.WrapParse("openapi", "", err)
	}
	if v, ok := root["openapi"].(string); ok && strings.HasPrefix(strings.TrimSpace(v), "3.") {
		return 3, nil
	}
	if v, ok := root["swagger"].(string); ok && strings.HasPrefix(strings.TrimSpace(v), "2.") {
		return 2, nil
	}
	return 0, errors.NewParseError("openapi", "", "missing or unknown version (expected openapi 3.x or swagger 2.0)", nil)
}

func convertV2(data []byte) (*openapi3.T, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.WrapParse("swagger", "", err)
	}
	var v2 openapi2.T
	if err := json.Unmarshal(raw, &v2); err != nil {
		return nil, errors.WrapParse("swagger", "", err)
	}
	doc, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, errors.WrapParse("swagger", "", err)
	}
	return doc, nil
}

// Endpoints converts every operation of doc into a catalog endpoint, sorted by name.
func Endpoints(doc *openapi3.T) []catalogs.Endpoint {
	var endpoints []catalogs.Endpoint
	for _, path := range sortedPaths(doc) {
		item := doc.Paths[path]
		for _, op := range operations(item) {
			endpoints = append(endpoints, endpoint(doc, path, item, op.method, op.op))
		}
	}
	slices.SortFunc(endpoints, func(a, b catalogs.Endpoint) int {
		return strings.Compare(a.Name, b.Name)
	})
	return endpoints
}

// Catalog converts doc into a validated catalog.
func Catalog(doc *openapi3.T) (*catalogs.Catalog, error) {
	endpoints := Endpoints(doc)
	if len(endpoints) == 0 {
		return nil, errors.NewValidationError("paths", nil, "document defines no operations")
	}
	return catalogs.New(endpoints...)
}

type methodOp struct {
	method string
	op     *openapi3.Operation
}

// operations lists the supported operations of a path item in a stable order.
func operations(item *openapi3.PathItem) []methodOp {
	if item == nil {
		return nil
	}
	all := []methodOp{
		{"GET", item.Get},
		{"POST", item.Post},
		{"PUT", item.Put},
		{"PATCH", item.Patch},
		{"DELETE", item.Delete},
	}
	return slices.DeleteFunc(all, func(m methodOp) bool { return m.op == nil })
}

func sortedPaths(doc *openapi3.T) []string {
	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func endpoint(doc *openapi3.T, path string, item *openapi3.PathItem, method string, op *openapi3.Operation) catalogs.Endpoint {
	ep := catalogs.Endpoint{
		Name:         catalogs.EndpointName(method, path),
		Method:       method,
		Path:         path,
		Summary:      strings.TrimSpace(op.Summary),
		Description:  summarize(op.Description),
		Tags:         op.Tags,
		PathParams:   catalogs.PathParams(path),
		RequiresAuth: requiresAuth(doc, op),
	}

	for _, ref := range mergedParameters(item.Parameters, op.Parameters) {
		p := ref.Value
		if p.In != openapi3.ParameterInQuery {
			continue
		}
		ep.QueryParams = append(ep.QueryParams, catalogs.QueryParam{
			Name:     p.Name,
			Required: p.Required,
			Type:     paramType(p.Schema),
		})
	}
	return ep
}

// mergedParameters applies operation parameters over path-level ones,
// keeping declaration order.
func mergedParameters(pathLevel, opLevel openapi3.Parameters) openapi3.Parameters {
	var out openapi3.Parameters
	seen := make(map[string]int)
	for _, list := range []openapi3.Parameters{pathLevel, opLevel} {
		for _, ref := range list {
			if ref == nil || ref.Value == nil {
				continue
			}
			key := ref.Value.In + ":" + ref.Value.Name
			if i, ok := seen[key]; ok {
				out[i] = ref
				continue
			}
			seen[key] = len(out)
			out = append(out, ref)
		}
	}
	return out
}

func paramType(schema *openapi3.SchemaRef) catalogs.ParamType {
	if schema == nil || schema.Value == nil {
		return catalogs.ParamTypeString
	}
	switch t := catalogs.ParamType(schema.Value.Type); t {
	case catalogs.ParamTypeInteger, catalogs.ParamTypeBoolean, catalogs.ParamTypeNumber, catalogs.ParamTypeArray:
		return t
	}
	return catalogs.ParamTypeString
}

// requiresAuth uses operation security when declared, else the document default.
func requiresAuth(doc *openapi3.T, op *openapi3.Operation) bool {
	if op.Security != nil {
		return len(*op.Security) > 0
	}
	return len(doc.Security) > 0
}

// summarize keeps the first paragraph, cut to MaxDescription runes.
func summarize(description string) string {
	text := strings.TrimSpace(description)
	if first, _, found := strings.Cut(text, "\n\n"); found {
		text = strings.TrimSpace(first)
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > MaxDescription {
		return string(runes[:MaxDescription]) + "..."
	}
	return text
}
