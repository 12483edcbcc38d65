// Package catalog implements the catalog subcommands.
package catalog

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/redlist/internal/appcontext"
	"github.com/agentstation/redlist/internal/openapi"
	"github.com/agentstation/redlist/pkg/catalogs"
	"github.com/agentstation/redlist/pkg/constants"
	"github.com/agentstation/redlist/pkg/errors"
)

// NewCommand creates the catalog command group.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export or generate endpoint catalogs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newExportCommand(app), newGenerateCommand(app))
	return cmd
}

func newExportCommand(app appcontext.Interface) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		Example: `  iucn catalog export > endpoints.yaml
  iucn catalog export --out endpoints.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			return write(app, cat, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	return cmd
}

func newGenerateCommand(app appcontext.Interface) *cobra.Command {
	var (
		source string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a catalog from an OpenAPI document",
		Long: `Generate converts an OpenAPI 3 (or Swagger 2.0) document into the catalog
format. Each operation becomes an endpoint named after its method and path,
with the /api/v4/ prefix removed. The result can be used with --catalog.`,
		Example: `  iucn catalog generate --openapi https://api.iucnredlist.org/api-docs/v4/openapi.yaml
  iucn catalog generate --openapi openapi.json --out endpoints.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source == "" {
				return errors.NewValidationError("openapi", source, "--openapi is required")
			}

			doc, err := openapi.Load(cmd.Context(), source)
			if err != nil {
				return err
			}
			cat, err := openapi.Catalog(doc)
			if err != nil {
				return err
			}
			app.Logger().Info().
				Str("source", source).
				Int("endpoints", cat.Len()).
				Msg("Generated catalog")
			return write(app, cat, out)
		},
	}
	cmd.Flags().StringVar(&source, "openapi", "", "OpenAPI document path or URL")
	cmd.Flags().StringVar(&out, "out", "", "Write to this file instead of stdout")
	return cmd
}

func write(app appcontext.Interface, cat *catalogs.Catalog, path string) error {
	data, err := catalogs.Marshal(cat)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = app.Stdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
