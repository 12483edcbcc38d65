// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// WordSepNormalizeFunc lets flags be spelled with underscores, so
// --list_endpoints and --log_level match their dashed names.
func WordSepNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// Flags holds the persistent flags shared by every command.
type Flags struct {
	Output      string
	LogLevel    string
	ConfigFile  string
	CatalogFile string
	NoColor     bool
}

// AddFlags adds the persistent flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	cmd.SetGlobalNormalizationFunc(WordSepNormalizeFunc)

	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", "",
		"Output format: json, yaml, table, wide")
	cmd.PersistentFlags().StringVar(&flags.Output, "format", "", "")
	_ = cmd.PersistentFlags().MarkHidden("format")

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: DEBUG, INFO, WARNING, ERROR (default WARNING)")
	cmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "",
		"Path to a JSON config file (default ~/.iucn_client.json)")
	cmd.PersistentFlags().StringVar(&flags.CatalogFile, "catalog", "",
		"Load endpoints from a catalog YAML file instead of the embedded one")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored log output")

	return flags
}

// Parse extracts global flags from the command hierarchy.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()
	pf := root.PersistentFlags()

	output, _ := pf.GetString("output")
	logLevel, _ := pf.GetString("log-level")
	configFile, _ := pf.GetString("config")
	catalogFile, _ := pf.GetString("catalog")
	noColor, _ := pf.GetBool("no-color")

	return &Flags{
		Output:      output,
		LogLevel:    logLevel,
		ConfigFile:  configFile,
		CatalogFile: catalogFile,
		NoColor:     noColor,
	}
}

// CallFlags holds the flags of the root endpoint-calling command.
type CallFlags struct {
	Params        []string
	ListEndpoints bool
	Tag           string
	DryRun        bool
}

// AddCallFlags adds the endpoint-calling flags to the root command.
func AddCallFlags(cmd *cobra.Command) *CallFlags {
	flags := &CallFlags{}

	cmd.Flags().StringArrayVarP(&flags.Params, "param", "p", nil,
		"Parameter in key=value form (repeatable)")
	cmd.Flags().BoolVar(&flags.ListEndpoints, "list-endpoints", false,
		"List all available endpoints")
	cmd.Flags().StringVar(&flags.Tag, "tag", "",
		"Only list endpoints with this tag (with --list-endpoints)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"Print the resolved request without sending it")

	return flags
}
