// Package species checks the Red List conservation status of named species.
//
// A Checker looks up one binomial at a time with get_taxa_scientific_name and
// condenses the response into a Result. Lookup failures never abort a batch:
// they become results with StatusError and the message preserved.
package species

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/constants"
	"github.com/agentstation/redlist/pkg/logging"
)

// Endpoints used by the checker.
const (
	EndpointScientificName = "get_taxa_scientific_name"
	EndpointCategories     = "get_red_list_categories"
)

// Status is the outcome of a single lookup.
type Status string

// Lookup outcomes.
const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// Placeholder values written when the API has nothing to report.
const (
	NotAvailable = "N/A"
	Unknown      = "Unknown"
)

// threatenedCategories are the extinct and threatened category codes.
var threatenedCategories = map[string]bool{
	"EX": true,
	"EW": true,
	"CR": true,
	"EN": true,
	"VU": true,
}

// IsThreatened reports whether a category code is extinct or threatened.
func IsThreatened(code string) bool {
	return threatenedCategories[code]
}

// Caller is the part of the Red List client the checker needs.
type Caller interface {
	CallInto(ctx context.Context, name string, args *catalogs.Args, target any) error
}

// Result is the condensed conservation status of one species.
type Result struct {
	Status                Status `json:"status"`
	ScientificName        string `json:"scientific_name"`
	CommonName            string `json:"common_name"`
	FamilyName            string `json:"family_name"`
	Category              string `json:"red_list_category"`
	YearPublished         string `json:"year_published"`
	AssessmentID          string `json:"assessment_id"`
	URL                   string `json:"url"`
	PossiblyExtinct       bool   `json:"possibly_extinct"`
	PossiblyExtinctInWild bool   `json:"possibly_extinct_in_wild"`
	Error                 string `json:"error,omitempty"`

	// Set by Process.
	Row                int    `json:"row_number,omitempty"`
	InputGenus         string `json:"input_genus,omitempty"`
	InputSpecies       string `json:"input_species,omitempty"`
	ConservationStatus string `json:"conservation_status,omitempty"`
	Threatened         bool   `json:"is_threatened"`
}

// ParseScientificName splits a name into genus and species epithet. Words
// after the second are ignored. A single word yields an empty epithet.
func ParseScientificName(name string) (genus, epithet string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

// Checker looks up species through a Red List client.
type Checker struct {
	client Caller
	logger *zerolog.Logger
}

// NewChecker creates a Checker. A nil logger uses the package default.
func NewChecker(client Caller, logger *zerolog.Logger) *Checker {
	if logger == nil {
		logger = logging.Default()
	}
	return &Checker{client: client, logger: logger}
}

// Check looks up one species. It never returns an error: failures are
// reported as a Result with StatusError.
func (c *Checker) Check(ctx context.Context, genus, epithet string) Result {
	fallback := strings.TrimSpace(genus + " " + epithet)
	args := new(catalogs.Args).
		SetString("genus_name", genus).
		SetString("species_name", epithet)

	var resp taxaResponse
	if err := c.client.CallInto(ctx, EndpointScientificName, args, &resp); err != nil {
		c.logger.Debug().Err(err).Str("species", fallback).Msg("Species lookup failed")
		r := placeholder(StatusError, fallback, "Error")
		r.Error = err.Error()
		return r
	}

	latest := resp.latest()
	if latest == nil {
		return placeholder(StatusNotFound, fallback, "Not Found")
	}

	return Result{
		Status:                StatusFound,
		ScientificName:        orDefault(resp.Taxon.ScientificName, fallback),
		CommonName:            resp.Taxon.commonName(),
		FamilyName:            orDefault(resp.Taxon.FamilyName, NotAvailable),
		Category:              orDefault(latest.Category, Unknown),
		YearPublished:         orDefault(string(latest.YearPublished), Unknown),
		AssessmentID:          orDefault(string(latest.AssessmentID), Unknown),
		URL:                   orDefault(latest.URL, Unknown),
		PossiblyExtinct:       latest.PossiblyExtinct,
		PossiblyExtinctInWild: latest.PossiblyExtinctInWild,
	}
}

// StatusDescriptions maps category codes of the current Categories and
// Criteria version to their English descriptions. Any failure yields an
// empty map so callers fall back to the bare codes.
func (c *Checker) StatusDescriptions(ctx context.Context) map[string]string {
	var resp categoriesResponse
	if err := c.client.CallInto(ctx, EndpointCategories, nil, &resp); err != nil {
		c.logger.Warn().Err(err).Msg("Could not fetch status descriptions")
		return map[string]string{}
	}

	descriptions := make(map[string]string, len(resp.Categories))
	for _, cat := range resp.Categories {
		if cat.Version != constants.CategoriesVersion {
			continue
		}
		desc, ok := cat.Description[constants.DescriptionLanguage]
		if !ok {
			desc = cat.Code
		}
		descriptions[cat.Code] = desc
	}
	return descriptions
}

func placeholder(status Status, name, category string) Result {
	return Result{
		Status:         status,
		ScientificName: name,
		CommonName:     NotAvailable,
		FamilyName:     NotAvailable,
		Category:       category,
		YearPublished:  NotAvailable,
		AssessmentID:   NotAvailable,
		URL:            NotAvailable,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

type taxaResponse struct {
	Taxon       taxon        `json:"taxon"`
	Assessments []assessment `json:"assessments"`
}

// latest returns the assessment flagged latest, else the first one.
func (r *taxaResponse) latest() *assessment {
	for i := range r.Assessments {
		if r.Assessments[i].Latest {
			return &r.Assessments[i]
		}
	}
	if len(r.Assessments) > 0 {
		return &r.Assessments[0]
	}
	return nil
}

type taxon struct {
	ScientificName string       `json:"scientific_name"`
	FamilyName     string       `json:"family_name"`
	CommonNames    []commonName `json:"common_names"`
}

type commonName struct {
	Name string `json:"name"`
	Main bool   `json:"main"`
}

// commonName returns the main common name, else the first, else N/A.
func (t *taxon) commonName() string {
	for _, cn := range t.CommonNames {
		if cn.Main {
			return orDefault(cn.Name, NotAvailable)
		}
	}
	if len(t.CommonNames) > 0 {
		return orDefault(t.CommonNames[0].Name, NotAvailable)
	}
	return NotAvailable
}

type assessment struct {
	AssessmentID          scalar `json:"assessment_id"`
	Latest                bool   `json:"latest"`
	Category              string `json:"red_list_category_code"`
	YearPublished         scalar `json:"year_published"`
	URL                   string `json:"url"`
	PossiblyExtinct       bool   `json:"possibly_extinct"`
	PossiblyExtinctInWild bool   `json:"possibly_extinct_in_the_wild"`
}

type categoriesResponse struct {
	Categories []category `json:"red_list_categories"`
}

type category struct {
	Code        string            `json:"code"`
	Version     string            `json:"version"`
	Description map[string]string `json:"description"`
}

// scalar accepts a JSON string or number and keeps its text.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*s = scalar(strconv.FormatInt(i, 10))
		return nil
	}
	*s = scalar(n.String())
	return nil
}
