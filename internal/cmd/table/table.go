// Package table converts catalog endpoints and species results to table rows.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/redlist/internal/cmd/emoji"
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/species"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// EndpointsToTableData converts endpoints to table format. Wide output adds
// the path, tags and parameter names.
func EndpointsToTableData(endpoints []catalogs.Endpoint, wide bool) Data {
	headers := []string{"Endpoint", "Method", "Summary"}
	if wide {
		headers = append(headers, "Path", "Tags", "Parameters", "Auth")
	}

	rows := make([][]string, 0, len(endpoints))
	for _, ep := range endpoints {
		row := []string{ep.Name, ep.Method, Truncate(ep.Summary, 60)}
		if wide {
			row = append(row,
				ep.Path,
				orDash(strings.Join(ep.Tags, ", ")),
				orDash(strings.Join(ParamNames(ep), ", ")),
				authSymbol(ep.RequiresAuth),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// ResultsToTableData converts species results to table format.
func ResultsToTableData(results []species.Result) Data {
	headers := []string{"Row", "Scientific Name", "Common Name", "Family", "Status", "Threatened", "Year"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := r.ConservationStatus
		if status == "" {
			status = r.Category
		}
		threatened := emoji.Optional
		if r.Threatened {
			threatened = emoji.Warning
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Row),
			r.ScientificName,
			r.CommonName,
			r.FamilyName,
			status,
			threatened,
			r.YearPublished,
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignCenter, AlignRight},
	}
}

// SummaryToTableData converts species summary counts to a two column table.
func SummaryToTableData(s species.Summary) Data {
	return Data{
		Headers: []string{"Result", "Count"},
		Rows: [][]string{
			{"Total processed", strconv.Itoa(s.Total)},
			{"Found", strconv.Itoa(s.Found)},
			{"Not found", strconv.Itoa(s.NotFound)},
			{"Errors", strconv.Itoa(s.Errors)},
			{"Threatened", strconv.Itoa(len(s.Threatened))},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// ParamNames lists path parameters then query parameters, marking optional
// query parameters with a trailing "?".
func ParamNames(ep catalogs.Endpoint) []string {
	names := make([]string, 0, len(ep.PathParams)+len(ep.QueryParams))
	names = append(names, ep.PathParams...)
	for _, q := range ep.QueryParams {
		if q.Required {
			names = append(names, q.Name)
		} else {
			names = append(names, q.Name+"?")
		}
	}
	return names
}

// Truncate shortens s to at most n runes, ending with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n || n < 4 {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func authSymbol(required bool) string {
	if required {
		return emoji.Success
	}
	return emoji.Optional
}

func orDash(s string) string {
	if s == "" {
		return emoji.Optional
	}
	return s
}
