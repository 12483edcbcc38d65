// Package call implements the root command: calling an endpoint by name,
// printing endpoint help, and listing the catalog.
package call

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/redlist/internal/appcontext"
	"github.com/agentstation/redlist/internal/cmd/globals"
	"github.com/agentstation/redlist/internal/cmd/output"
	"github.com/agentstation/redlist/pkg/catalogs"
)

// Run executes the root command for the given positional arguments.
// Without an endpoint it prints usage.
func Run(cmd *cobra.Command, app appcontext.Interface, flags *globals.CallFlags, args []string) error {
	if flags.ListEndpoints {
		return ListEndpoints(app, flags.Tag)
	}
	if len(args) == 0 {
		return cmd.Help()
	}

	name, positionals := args[0], args[1:]
	logger := app.Logger().With().Str("endpoint", name).Logger()

	cat, err := app.Catalog()
	if err != nil {
		return err
	}
	ep, err := cat.Get(name)
	if err != nil {
		return err
	}

	if wantsHelp(positionals) {
		return WriteHelp(app.Stdout(), ep)
	}

	callArgs, err := BuildArgs(ep, positionals, flags.Params)
	if err != nil {
		return err
	}
	logger.Debug().Strs("params", callArgs.Keys()).Msg("Calling endpoint")

	client, err := app.Client()
	if err != nil {
		return err
	}

	format := output.Format(app.OutputFormat())
	if flags.DryRun {
		req, err := client.Prepare(name, callArgs)
		if err != nil {
			return err
		}
		return output.FormatAny(app.Stdout(), req, format)
	}

	result, err := client.Call(cmd.Context(), name, callArgs)
	if err != nil {
		return err
	}
	return output.FormatAny(app.Stdout(), result, format)
}

// ListEndpoints prints the catalog, optionally restricted to one tag. With no
// output format it prints one line per endpoint.
func ListEndpoints(app appcontext.Interface, tag string) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	endpoints := cat.List()
	if tag != "" {
		endpoints = cat.ByTag(tag)
	}

	format := output.Format(app.OutputFormat())
	if format == "" {
		return writeEndpointLines(app.Stdout(), endpoints)
	}
	return output.FormatEndpoints(app.Stdout(), endpoints, format)
}

func writeEndpointLines(w io.Writer, endpoints []catalogs.Endpoint) error {
	if _, err := fmt.Fprintln(w, "Available endpoints:"); err != nil {
		return err
	}
	for _, ep := range endpoints {
		summary := ep.Summary
		if summary == "" {
			summary = "No summary"
		}
		if _, err := fmt.Fprintf(w, "  %s (%s) - %s\n", ep.Name, ep.Method, summary); err != nil {
			return err
		}
	}
	return nil
}
