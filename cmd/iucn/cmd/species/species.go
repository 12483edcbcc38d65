// Package species implements the species subcommands.
package species

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/redlist/internal/appcontext"
	"github.com/agentstation/redlist/internal/cmd/alerts"
	"github.com/agentstation/redlist/internal/cmd/output"
	"github.com/agentstation/redlist/internal/cmd/table"
	"github.com/agentstation/redlist/internal/tabular"
	"github.com/agentstation/redlist/pkg/species"
)

// NewCommand creates the species command group.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "Work with species lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewCheckCommand(app))
	return cmd
}

// NewCheckCommand creates the species check subcommand.
func NewCheckCommand(app appcontext.Interface) *cobra.Command {
	var (
		outputFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "check <input>",
		Short: "Check the conservation status of every species in a spreadsheet",
		Long: `Check reads a CSV, TSV or XLSX file and looks up each species on the
Red List. The species name is taken from a 'species', 'scientific_name' or
'name' column, or from 'genus' plus 'species_name' (or 'epithet') columns.

Results are printed as a table on a terminal and as JSON when piped, or
written to --output. The file format follows its extension (.csv, .tsv,
.xlsx); other extensions write CSV.`,
		Example: `  iucn species check species.csv
  iucn species check species.xlsx -o results.xlsx -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, app, args[0], outputFile, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write results to this file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress, summary and threatened species")

	return cmd
}

func runCheck(cmd *cobra.Command, app appcontext.Interface, input, outputFile string, verbose bool) error {
	logger := app.Logger()

	notes := alerts.DiscardWriter
	if verbose {
		notes = alerts.NewWriterTo(app.Stderr())
	}

	data, err := tabular.Read(input)
	if err != nil {
		return err
	}
	_ = notes.WriteAlert(alerts.NewInfo(fmt.Sprintf("Loaded %d rows from %s", data.Len(), input)))

	client, err := app.Client()
	if err != nil {
		return err
	}

	checker := species.NewChecker(client, logger)
	report, err := checker.Process(cmd.Context(), data, progress{notes})
	if err != nil {
		return err
	}
	summary := report.Summary()
	logger.Info().
		Int("total", summary.Total).
		Int("found", summary.Found).
		Int("not_found", summary.NotFound).
		Int("errors", summary.Errors).
		Msg("Species check complete")

	if verbose {
		if err := writeSummary(app.Stderr(), notes, summary); err != nil {
			return err
		}
	}

	if outputFile != "" {
		if err := tabular.Write(outputFile, report.Table()); err != nil {
			return err
		}
		_ = notes.WriteAlert(alerts.NewSuccess("Results saved to: " + outputFile))
		return nil
	}

	format := output.DetectFormat(app.Stdout(), app.OutputFormat(), output.FormatTable)
	if format == output.FormatTable || format == output.FormatWide {
		return output.NewFormatter(format).Format(app.Stdout(), table.ResultsToTableData(report.Results))
	}
	return output.FormatAny(app.Stdout(), report.Results, format)
}

func writeSummary(w io.Writer, notes alerts.Writer, summary species.Summary) error {
	if err := output.NewFormatter(output.FormatTable).Format(w, table.SummaryToTableData(summary)); err != nil {
		return err
	}
	if len(summary.Threatened) == 0 {
		return nil
	}

	alert := alerts.NewWarning(fmt.Sprintf("Threatened species (%d)", len(summary.Threatened)))
	for _, r := range summary.Threatened {
		alert.WithDetails(fmt.Sprintf("%s: %s (%s)", r.ScientificName, r.ConservationStatus, r.YearPublished))
		if r.URL != species.NotAvailable && r.URL != species.Unknown {
			alert.WithDetails("  Study: " + r.URL)
		}
	}
	return notes.WriteAlert(alert)
}

// progress reports per-row events as alerts.
type progress struct {
	notes alerts.Writer
}

func (p progress) Skipped(row int) {
	_ = p.notes.WriteAlert(alerts.NewWarning(fmt.Sprintf("Row %d: Skipping invalid species name", row)))
}

func (p progress) Checking(row int, genus, epithet string) {
	_ = p.notes.WriteAlert(alerts.NewInfo(fmt.Sprintf("Row %d: Checking %s %s...", row, genus, epithet)))
}
