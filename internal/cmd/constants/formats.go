// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the table output format.
	FormatTable = "table"

	// FormatWide is an extended table format with more columns.
	FormatWide = "wide"

	// FormatJSON outputs data as indented JSON. It is the default for API responses.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)
