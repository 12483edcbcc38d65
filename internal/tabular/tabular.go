// Package tabular reads and writes the spreadsheets used by the species checker.
// CSV, TSV and Excel workbooks share one in-memory shape: a header row plus
// string cells.
package tabular

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentstation/redlist/pkg/errors"
)

// Format is a spreadsheet file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// Table is a header row plus data rows. Rows are padded to the header width on read.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Cell returns the value at row and column, or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Append adds a data row.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// pad extends short rows to the header width.
func (t *Table) pad() {
	width := len(t.Header)
	for i, row := range t.Rows {
		if len(row) < width {
			t.Rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
}

// InputFormat returns the format of a readable file from its extension.
func InputFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	default:
		return "", errors.NewValidationError("input", path, "unsupported file format: "+ext)
	}
}

// OutputFormat returns the format to write for a path. Unknown extensions write CSV.
func OutputFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return FormatTSV
	case ".xlsx", ".xls":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Read loads a table, choosing the reader from the file extension.
func Read(path string) (*Table, error) {
	format, err := InputFormat(path)
	if err != nil {
		return nil, err
	}

	var t *Table
	switch format {
	case FormatXLSX:
		t, err = readXLSX(path)
	case FormatTSV:
		t, err = readDelimited(path, '\t')
	default:
		t, err = readDelimited(path, ',')
	}
	if err != nil {
		return nil, err
	}
	t.pad()
	return t, nil
}

// Write saves a table, choosing the writer from the file extension.
func Write(path string, t *Table) error {
	switch OutputFormat(path) {
	case FormatXLSX:
		return writeXLSX(path, t)
	case FormatTSV:
		return writeDelimited(path, '\t', t)
	default:
		return writeDelimited(path, ',', t)
	}
}

// Column returns the index of the first header equal to name, ignoring case.
func (t *Table) Column(name string) int {
	return slices.IndexFunc(t.Header, func(h string) bool {
		return strings.EqualFold(strings.TrimSpace(h), name)
	})
}
