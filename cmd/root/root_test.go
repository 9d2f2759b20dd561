package root_test

import (
	"testing"

	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/config"
	"fjacquet/finance-cli/internal/container"
	"fjacquet/finance-cli/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func reset(t *testing.T) {
	t.Helper()
	flags := root.SharedFlags
	c := root.AppContainer
	t.Cleanup(func() {
		root.SharedFlags = flags
		root.AppContainer = c
	})
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "finance-cli", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal finance API")
	assert.Contains(t, root.Cmd.Long, "credit card statements")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	format := root.Cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "f", format.Shorthand)

	output := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)

	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("api-url"))
	assert.NotNil(t, root.Cmd.PersistentFlags().Lookup("config"))
}

func TestSetup_UsesProvidedContainer(t *testing.T) {
	reset(t)
	logger := logging.NewMockLogger()
	c, err := container.NewContainer(config.DefaultConfig(), container.WithLogger(logger))
	require.NoError(t, err)
	root.AppContainer = c

	require.NoError(t, root.Setup())
	assert.Same(t, c, root.AppContainer)
	assert.Equal(t, logging.Logger(logger), root.Log)
}

func TestSetup_RejectsUnknownFormat(t *testing.T) {
	reset(t)
	root.SharedFlags.Format = "xml"

	err := root.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestSetup_BuildsContainerWithAPIURL(t *testing.T) {
	reset(t)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Setenv("FINANCE_API_BASE_URL", "")
	t.Setenv("FINANCE_OUTPUT_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FINANCE_LOG_LEVEL", "")
	root.AppContainer = nil
	root.SharedFlags = root.CommonFlags{APIURL: "http://example.test/api"}

	require.NoError(t, root.Setup())
	require.NotNil(t, root.AppContainer)
	assert.Equal(t, "http://example.test/api", root.AppContainer.GetConfig().API.BaseURL)
}

func TestOutputFormat(t *testing.T) {
	reset(t)
	root.AppContainer = nil
	root.SharedFlags.Format = ""
	assert.Equal(t, "text", root.OutputFormat())

	cfg := config.DefaultConfig()
	cfg.Output.Format = "yaml"
	c, err := container.NewContainer(cfg, container.WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	root.AppContainer = c
	assert.Equal(t, "yaml", root.OutputFormat())

	root.SharedFlags.Format = "JSON"
	assert.Equal(t, "json", root.OutputFormat())
}
