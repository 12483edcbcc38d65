// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used for status indicators in tables and progress output.
const (
	// Success marks completed work and required authentication.
	Success = "✓"

	// Error marks failed lookups.
	Error = "✗"

	// Warning marks threatened species and non-fatal problems.
	Warning = "!"

	// Optional marks empty cells and skipped rows.
	Optional = "-"

	// Info prefixes informational progress lines.
	Info = "i"
)
