package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromSubcommand(t *testing.T) {
	root := &cobra.Command{Use: "iucn"}
	AddFlags(root)
	sub := &cobra.Command{Use: "species", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(sub)

	root.SetArgs([]string{"species", "-o", "yaml", "--log-level", "DEBUG", "--catalog", "c.yaml"})
	require.NoError(t, root.Execute())

	flags := Parse(sub)
	assert.Equal(t, "yaml", flags.Output)
	assert.Equal(t, "DEBUG", flags.LogLevel)
	assert.Equal(t, "c.yaml", flags.CatalogFile)
	assert.Empty(t, flags.ConfigFile)
}

func TestCallFlagsRepeatParams(t *testing.T) {
	root := &cobra.Command{Use: "iucn", Args: cobra.ArbitraryArgs, Run: func(*cobra.Command, []string) {}}
	flags := AddCallFlags(root)

	root.SetArgs([]string{"get_countries_code", "-p", "code=US", "-p", "page=2", "--dry-run"})
	require.NoError(t, root.Execute())

	assert.Equal(t, []string{"code=US", "page=2"}, flags.Params)
	assert.True(t, flags.DryRun)
	assert.False(t, flags.ListEndpoints)
}

func TestUnderscoreFlagNames(t *testing.T) {
	root := &cobra.Command{Use: "iucn", Args: cobra.ArbitraryArgs, Run: func(*cobra.Command, []string) {}}
	AddFlags(root)
	callFlags := AddCallFlags(root)

	root.SetArgs([]string{"--list_endpoints", "--log_level", "INFO"})
	require.NoError(t, root.Execute())

	assert.True(t, callFlags.ListEndpoints)
	assert.Equal(t, "INFO", Parse(root).LogLevel)
}
