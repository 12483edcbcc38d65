package call

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/constants"
)

// WriteHelp prints the documented parameters of an endpoint.
func WriteHelp(w io.Writer, ep *catalogs.Endpoint) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n\n", ep.Name)
	fmt.Fprintf(&b, "%s\n\n", strings.Join(ep.Tags, ", "))
	fmt.Fprintf(&b, "%s\n\n", ep.Summary)
	fmt.Fprintf(&b, "%s\n\n", Wrap(ep.Description, constants.HelpWidth, ""))

	if len(ep.PathParams) > 0 {
		b.WriteString("Path Parameters:\n")
		for _, p := range ep.PathParams {
			fmt.Fprintf(&b, "Parameter        : %s\n", p)
			b.WriteString("  Location       : path\n")
			b.WriteString("  Required       : Yes\n")
			b.WriteString("  Type           : string\n\n")
		}
	}

	if len(ep.QueryParams) > 0 {
		indent := strings.Repeat(" ", constants.ParamHelpIndent)
		description := Wrap("Query parameter for "+ep.Name, constants.ParamHelpWidth, indent)
		b.WriteString("Query Parameters:\n")
		for _, q := range ep.QueryParams {
			fmt.Fprintf(&b, "Parameter        : %s\n", q.Name)
			fmt.Fprintf(&b, "  Description    : %s\n", description)
			b.WriteString("  Location       : query\n")
			fmt.Fprintf(&b, "  Required       : %s\n", yesNo(q.Required))
			fmt.Fprintf(&b, "  Type           : %s\n\n", orString(q.Type))
		}
	}

	auth := "Not Required"
	if ep.RequiresAuth {
		auth = "Required"
	}
	fmt.Fprintf(&b, "Authentication   : %s\n", auth)
	fmt.Fprintf(&b, "HTTP Method      : %s\n", ep.Method)
	fmt.Fprintf(&b, "API Path         : %s\n", ep.Path)

	_, err := io.WriteString(w, b.String())
	return err
}

// Wrap fills text greedily into lines of at most width columns. Runs of
// whitespace collapse to one space and lines after the first start with
// indent, which counts toward the width. A word too long for any line is
// split, filling the current line first.
func Wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var (
		lines  []string
		line   strings.Builder
		prefix string
		n      int // runes on the current line
		empty  = true
	)
	newLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		line.WriteString(indent)
		prefix, n, empty = indent, utf8.RuneCountInString(indent), true
	}

	for _, word := range words {
		r := []rune(word)
		for len(r) > 0 {
			sep := " "
			if empty {
				sep = ""
			}
			if n+len(sep)+len(r) <= width {
				line.WriteString(sep + string(r))
				n += len(sep) + len(r)
				empty = false
				break
			}
			if len(r) <= width-utf8.RuneCountInString(prefix) {
				newLine()
				continue
			}
			space := width - n - len(sep)
			if space < 1 {
				if !empty {
					newLine()
					continue
				}
				space = 1
			}
			line.WriteString(sep + string(r[:space]))
			r = r[space:]
			newLine()
		}
	}
	if !empty {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orString(t catalogs.ParamType) string {
	if t == "" {
		return catalogs.ParamTypeString.String()
	}
	return t.String()
}
