package species

import (
	"context"
	"strings"

	"github.com/agentstation/redlist/internal/tabular"
	"github.com/agentstation/redlist/pkg/errors"
)

// OutputColumns are the columns written for each checked species.
var OutputColumns = []string{
	"scientific_name",
	"common_name",
	"family_name",
	"conservation_status",
	"is_threatened",
	"year_published",
	"assessment_id",
	"url",
}

// Columns locates the species name in an input table. Either Species is set,
// or both Genus and Epithet are. Unset indexes are -1.
type Columns struct {
	Species int
	Genus   int
	Epithet int
}

// DetectColumns finds the name columns in a header, ignoring case. A full
// name column is one of species, scientific_name or name. Otherwise genus plus
// species_name or epithet are required.
func DetectColumns(header []string) (Columns, error) {
	cols := Columns{Species: -1, Genus: -1, Epithet: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "species", "scientific_name", "name":
			cols.Species = i
		case "genus":
			cols.Genus = i
		case "species_name", "epithet":
			cols.Epithet = i
		}
	}

	if cols.Species < 0 && (cols.Genus < 0 || cols.Epithet < 0) {
		return cols, errors.NewValidationError("columns", header,
			"could not find species name columns; expected 'species' or 'scientific_name', or 'genus' + 'species_name', found: "+
				strings.Join(header, ", "))
	}
	return cols, nil
}

// names returns the genus and epithet of a data row.
func (c Columns) names(t *tabular.Table, row int) (string, string) {
	if c.Species >= 0 {
		return ParseScientificName(t.Cell(row, c.Species))
	}
	return strings.TrimSpace(t.Cell(row, c.Genus)), strings.TrimSpace(t.Cell(row, c.Epithet))
}

// Progress receives per-row events while a table is processed.
type Progress interface {
	Skipped(row int)
	Checking(row int, genus, epithet string)
}

// Report holds the results of a processed table in input order.
type Report struct {
	Results []Result
}

// Summary counts results by status.
type Summary struct {
	Total      int      `json:"total"`
	Found      int      `json:"found"`
	NotFound   int      `json:"not_found"`
	Errors     int      `json:"errors"`
	Threatened []Result `json:"threatened,omitempty"`
}

// Process checks every row of the table. Rows without both a genus and an
// epithet are skipped. Status descriptions are fetched once up front.
func (c *Checker) Process(ctx context.Context, t *tabular.Table, progress Progress) (*Report, error) {
	cols, err := DetectColumns(t.Header)
	if err != nil {
		return nil, err
	}

	descriptions := c.StatusDescriptions(ctx)
	report := &Report{}

	for i := range t.Rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		row := i + 1
		genus, epithet := cols.names(t, i)
		if genus == "" || epithet == "" {
			if progress != nil {
				progress.Skipped(row)
			}
			c.logger.Debug().Int("row", row).Msg("Skipping invalid species name")
			continue
		}
		if progress != nil {
			progress.Checking(row, genus, epithet)
		}

		result := c.Check(ctx, genus, epithet)
		result.Row = row
		result.InputGenus = genus
		result.InputSpecies = epithet
		result.ConservationStatus = describe(descriptions, result.Category)
		result.Threatened = IsThreatened(result.Category)
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func describe(descriptions map[string]string, code string) string {
	if desc, ok := descriptions[code]; ok {
		return desc
	}
	return code
}

// Summary counts the report's results.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		switch res.Status {
		case StatusFound:
			s.Found++
		case StatusNotFound:
			s.NotFound++
		case StatusError:
			s.Errors++
		}
		if res.Threatened {
			s.Threatened = append(s.Threatened, res)
		}
	}
	return s
}

// Table renders the report with OutputColumns.
func (r *Report) Table() *tabular.Table {
	t := &tabular.Table{Header: OutputColumns}
	for _, res := range r.Results {
		t.Append(
			res.ScientificName,
			res.CommonName,
			res.FamilyName,
			res.ConservationStatus,
			formatBool(res.Threatened),
			res.YearPublished,
			res.AssessmentID,
			res.URL,
		)
	}
	return t
}

// formatBool matches the spreadsheet convention of capitalized booleans.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
