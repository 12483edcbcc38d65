package catalogs

import (
	"slices"
	"strings"
)

// ParamType is the declared type of a query parameter.
type ParamType string

// String returns the string representation of a ParamType.
func (t ParamType) String() string {
	return string(t)
}

// Query parameter types used by the Red List API.
const (
	ParamTypeString  ParamType = "string"
	ParamTypeInteger ParamType = "integer"
	ParamTypeBoolean ParamType = "boolean"
	ParamTypeNumber  ParamType = "number"
	ParamTypeArray   ParamType = "array"
)

// QueryParam describes a single query string parameter of an endpoint.
type QueryParam struct {
	Name     string    `json:"name" yaml:"name" validate:"required"`
	Required bool      `json:"required" yaml:"required"`
	Type     ParamType `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=string integer boolean number array"`
}

// Endpoint is an immutable description of one Red List API operation.
type Endpoint struct {
	Name         string       `json:"name" yaml:"name" validate:"required,excludesall=/{}"`    // Operation name, e.g. get_taxa_sis_sis_id
	Method       string       `json:"method" yaml:"method" validate:"required,oneof=GET POST PUT PATCH DELETE"`
	Path         string       `json:"path" yaml:"path" validate:"required,startswith=/"`       // Path template with {param} placeholders
	Summary      string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	Tags         []string     `json:"tags,omitempty" yaml:"tags,flow,omitempty"`
	PathParams   []string     `json:"path_params,omitempty" yaml:"path_params,flow,omitempty" validate:"dive,required"`
	QueryParams  []QueryParam `json:"query_params,omitempty" yaml:"query_params,omitempty" validate:"dive"`
	RequiresAuth bool         `json:"requires_auth" yaml:"requires_auth"`
}

// QueryParam returns the declared query parameter with the given name.
func (e *Endpoint) QueryParam(name string) (QueryParam, bool) {
	for _, q := range e.QueryParams {
		if q.Name == name {
			return q, true
		}
	}
	return QueryParam{}, false
}

// RequiredQueryParams returns the names of required query parameters in declared order.
func (e *Endpoint) RequiredQueryParams() []string {
	var names []string
	for _, q := range e.QueryParams {
		if q.Required {
			names = append(names, q.Name)
		}
	}
	return names
}

// IsParam reports whether name is a declared path or query parameter.
func (e *Endpoint) IsParam(name string) bool {
	if slices.Contains(e.PathParams, name) {
		return true
	}
	_, ok := e.QueryParam(name)
	return ok
}

// placeholder returns the template token for a path parameter.
func placeholder(name string) string {
	return "{" + name + "}"
}

// hasPlaceholder reports whether the path template contains the parameter.
func (e *Endpoint) hasPlaceholder(name string) bool {
	return strings.Contains(e.Path, placeholder(name))
}
