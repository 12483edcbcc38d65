// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/redlist/internal/cmd/constants"
	"github.com/agentstation/redlist/internal/cmd/table"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = constants.FormatTable
	// FormatJSON represents JSON output format.
	FormatJSON Format = constants.FormatJSON
	// FormatYAML represents YAML output format.
	FormatYAML Format = constants.FormatYAML
	// FormatWide represents wide table output format.
	FormatWide Format = constants.FormatWide
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
// Unknown formats produce indented JSON.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable, FormatWide:
		return &TableFormatter{Wide: format == FormatWide}
	default:
		return &JSONFormatter{Indent: "  "}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.CustomMarshaler[json.Number](func(n json.Number) ([]byte, error) {
			return []byte(n.String()), nil
		}),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct {
	Wide bool
}

// Format outputs data in table format. Data that has no tabular shape,
// such as a decoded API response, is written as indented JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case table.Data:
		return f.formatTable(w, v)
	case *table.Data:
		return f.formatTable(w, *v)
	}

	if tableData := structsToTableData(data); tableData != nil {
		return f.formatTable(w, *tableData)
	}

	jsonFormatter := &JSONFormatter{Indent: "  "}
	return jsonFormatter.Format(w, data)
}

func (f *TableFormatter) formatTable(w io.Writer, data table.Data) error {
	config := tablewriter.Config{}

	if len(data.ColumnAlignment) > 0 {
		twAlign := make([]tw.Align, len(data.ColumnAlignment))
		for i, align := range data.ColumnAlignment {
			switch align {
			case table.AlignLeft:
				twAlign[i] = tw.AlignLeft
			case table.AlignCenter:
				twAlign[i] = tw.AlignCenter
			case table.AlignRight:
				twAlign[i] = tw.AlignRight
			default:
				twAlign[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: twAlign}
		config.Row.Alignment = tw.CellAlignment{PerColumn: twAlign}
	}

	tbl := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		tbl.Header(headers...)
	}

	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := tbl.Append(cells...); err != nil {
			return err
		}
	}

	return tbl.Render()
}

// DetectFormat picks the explicit format when given. Otherwise a terminal
// writer gets fallback and anything else, such as a pipe, gets JSON.
func DetectFormat(w io.Writer, explicit string, fallback Format) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return fallback
	}
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatWide, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: json, yaml, table, wide", s)
	}
}

// structsToTableData converts a struct or a slice of structs to rows, with
// headers taken from json tags.
func structsToTableData(data any) *table.Data {
	v := reflect.Indirect(reflect.ValueOf(data))
	switch {
	case v.Kind() == reflect.Slice && v.Len() > 0 && reflect.Indirect(v.Index(0)).Kind() == reflect.Struct:
		elemType := reflect.Indirect(v.Index(0)).Type()
		out := &table.Data{}
		for i := 0; i < elemType.NumField(); i++ {
			out.Headers = append(out.Headers, headerName(elemType.Field(i)))
		}
		for i := 0; i < v.Len(); i++ {
			elem := reflect.Indirect(v.Index(i))
			row := make([]string, 0, elem.NumField())
			for j := 0; j < elem.NumField(); j++ {
				row = append(row, fmt.Sprintf("%v", elem.Field(j).Interface()))
			}
			out.Rows = append(out.Rows, row)
		}
		return out

	case v.Kind() == reflect.Struct:
		out := &table.Data{Headers: []string{"Property", "Value"}}
		for i := 0; i < v.NumField(); i++ {
			out.Rows = append(out.Rows, []string{
				headerName(v.Type().Field(i)),
				fmt.Sprintf("%v", v.Field(i).Interface()),
			})
		}
		return out
	}
	return nil
}

// headerName title-cases a field's json tag, falling back to the field name.
func headerName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "_", " "))
}
