package output

import (
	"io"

	"github.com/agentstation/redlist/internal/cmd/table"
	"github.com/agentstation/redlist/pkg/catalogs"
)

// FormatEndpoints writes endpoints as a table for table formats and as the
// catalog structure otherwise.
func FormatEndpoints(w io.Writer, endpoints []catalogs.Endpoint, format Format) error {
	var data any
	switch format {
	case FormatTable, FormatWide:
		data = table.EndpointsToTableData(endpoints, format == FormatWide)
	default:
		data = endpoints
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes data in the given format.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
