package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/redlist/cmd/iucn/cmd/call"
	"github.com/agentstation/redlist/cmd/iucn/cmd/catalog"
	"github.com/agentstation/redlist/cmd/iucn/cmd/species"
	"github.com/agentstation/redlist/internal/cmd/globals"
	"github.com/agentstation/redlist/internal/cmd/output"
	"github.com/agentstation/redlist/pkg/logging"
)

// Execute runs the iucn CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var callFlags *globals.CallFlags

	rootCmd := &cobra.Command{
		Use:   "iucn <endpoint> [params...] [-p key=value]...",
		Short: "A CLI for accessing the IUCN Red List API v4",
		Long: `iucn calls IUCN Red List API v4 endpoints by name.

Positional parameters after the endpoint fill its path parameters in order;
-p key=value supplies any parameter. Use "iucn <endpoint> help" to see the
parameters an endpoint accepts, and --list-endpoints to see every endpoint.

The API token is read from IUCN_API_TOKEN, from the file given by --config,
or from ~/.iucn_client.json.`,
		Example: `  iucn --list-endpoints
  iucn get_taxa_scientific_name help
  iucn get_taxa_scientific_name -p genus_name=Panthera -p species_name=leo
  iucn get_countries_code US -p page=2
  iucn species check species.csv -o results.xlsx`,
		Version:           a.version,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call.Run(cmd, a, callFlags, args)
		},
	}

	globals.AddFlags(rootCmd)
	callFlags = globals.AddCallFlags(rootCmd)

	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetVersionTemplate("iucn {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	a.config.UpdateFromFlags(globals.Parse(cmd))
	format, err := output.ParseFormat(a.config.Output)
	if err != nil {
		return err
	}
	a.config.Output = string(format)

	logger := NewLogger(a.config)
	logging.SetDefault(logger)
	a.logger = &logger
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(species.NewCommand(a))
	rootCmd.AddCommand(catalog.NewCommand(a))
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "iucn version %s\n", a.version)
			fmt.Fprintf(w, "commit: %s\n", a.commit)
			fmt.Fprintf(w, "built: %s\n", a.date)
			fmt.Fprintf(w, "built by: %s\n", a.builtBy)
			fmt.Fprintf(w, "go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// ExitOnError logs err and exits with status 1.
func (a *App) ExitOnError(err error) {
	if err == nil {
		return
	}
	a.logger.Error().Err(err).Msg("Command failed")
	os.Exit(1)
}

// ExitOnError is used before an App exists. It prints err to stderr and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
