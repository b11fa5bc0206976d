package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePageFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRunCompose_WritesOutputFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	page := writePageFile(t, `
regions:
  header: "Nexus"
  content: "<p>Welcome</p>"
page:
  this_year: "2026"
`)
	out := filepath.Join(t.TempDir(), "page.html")
	composeOutput = out
	t.Cleanup(func() { composeOutput = "" })

	require.NoError(t, runCompose(composeCmd, []string{page}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `<div class="branding">Nexus</div>`)
	assert.Contains(t, html, "<p>Welcome</p>")
	assert.Contains(t, html, "Copyright &copy; 2026")
}

func TestRunCompose_MissingPageFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := runCompose(composeCmd, []string{filepath.Join(t.TempDir(), "missing.yml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page file")
}

func TestRunRegions(t *testing.T) {
	regionsFormat = "text"
	assert.NoError(t, runRegions(regionsCmd, nil))

	regionsFormat = "yaml"
	t.Cleanup(func() { regionsFormat = "text" })
	assert.NoError(t, runRegions(regionsCmd, nil))
}

func TestRunDoctor_CleanPageFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	page := writePageFile(t, "regions:\n  content: body\n")
	assert.NoError(t, runDoctor(doctorCmd, []string{page}))
}

func TestRunDoctor_ReportsBrokenPageFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	page := writePageFile(t, ": not yaml [")
	err := runDoctor(doctorCmd, []string{page})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error")
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort("8080"))
	assert.NoError(t, ValidatePort("1"))
	assert.NoError(t, ValidatePort("65535"))
	assert.Error(t, ValidatePort("0"))
	assert.Error(t, ValidatePort("99999"))
	assert.Error(t, ValidatePort("not-a-port"))
}

func TestServePortFlagRejectsBadValues(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag)

	assert.Error(t, flag.Value.Set("99999"))
	assert.NoError(t, flag.Value.Set("3000"))
	t.Cleanup(func() { servePort = 0 })
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"compose", "serve", "regions", "doctor", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
