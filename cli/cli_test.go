package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/juju-prompt/errors"
	"github.com/grovetools/juju-prompt/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardCommandFlags(t *testing.T) {
	cmd := NewStandardCommand("juju-prompt", "Juju prompt segment")
	require.NoError(t, cmd.ParseFlags([]string{"-v", "--json", "-c", "/tmp/s.toml"}))

	opts := GetOptions(cmd)
	assert.Equal(t, CommandOptions{ConfigFile: "/tmp/s.toml", Verbose: true, JSONOutput: true}, opts)
}

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("STARSHIP_CONFIG", "")

	path, err := ResolveConfigPath("~/custom.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.toml"), path)

	path, err = ResolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".config", "starship.toml"), path)
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText("one two three four five six", 10)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, "short\nlines", wrapText("short\nlines", 10))
}

func TestFormatFlagName(t *testing.T) {
	assert.Equal(t, "-v, --verbose", formatFlagName(&pflag.Flag{Name: "verbose", Shorthand: "v"}))
	assert.Equal(t, "    --json", formatFlagName(&pflag.Flag{Name: "json"}))
}

func TestWriteHelp(t *testing.T) {
	root := NewStandardCommand("juju-prompt", "Juju prompt segment")
	root.AddCommand(&cobra.Command{Use: "render", Short: "Render the segment", Run: func(*cobra.Command, []string) {}})

	var buf bytes.Buffer
	writeHelp(&buf, root, 58)
	out := buf.String()

	assert.Contains(t, out, "JUJU-PROMPT")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "render")
	assert.Contains(t, out, "--config")
	assert.Contains(t, out, `Use "juju-prompt [command] --help"`)
}

func TestGetLoggerVerboseWritesToCommandStderr(t *testing.T) {
	t.Setenv("JUJU_PROMPT_LOG_STDERR", "")
	t.Setenv("JUJU_PROMPT_LOG_FORMAT", "")
	t.Setenv("JUJU_PROMPT_LOG_FILE", "")

	root := NewStandardCommand("juju-prompt-verbose", "x")
	root.AddCommand(&cobra.Command{
		Use: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetLogger(cmd)
			logger.Debug("loading config")
			logger.Error("Error in module `juju`")
			return nil
		},
	})

	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"render", "--verbose"})
	require.NoError(t, root.Execute())

	assert.Contains(t, stderr.String(), "[DEBUG]")
	assert.Contains(t, stderr.String(), "loading config")
	assert.Contains(t, stderr.String(), "Error in module `juju`")
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: errors.ConfigNotFound("/x.toml"), want: "Configuration not found"},
		{err: errors.ConfigInvalid("bad"), want: "Invalid configuration"},
		{err: errors.UnknownVariable("foo"), want: "Invalid format string"},
		{err: errors.UnknownStyle("color"), want: "Invalid style"},
		{err: fmt.Errorf("plain"), want: "Error: plain"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		got := NewErrorHandler(false, &buf).Handle(tt.err)
		assert.Equal(t, tt.err, got)
		assert.Contains(t, buf.String(), tt.want)
	}

	assert.NoError(t, NewErrorHandler(false, &bytes.Buffer{}).Handle(nil))
}

func TestErrorHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	_ = NewErrorHandler(true, &buf).Handle(errors.UnknownVariable("foo"))
	assert.Contains(t, buf.String(), `"code": "UNKNOWN_VARIABLE"`)
}

func TestVersionCommand(t *testing.T) {
	info := version.Info{Version: "v1.2.3", Commit: "abc", BuildDate: "today", Platform: "linux/amd64"}

	root := NewStandardCommand("juju-prompt", "x")
	root.AddCommand(NewVersionCommand("juju-prompt", info))

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "juju-prompt v1.2.3")
	assert.Contains(t, buf.String(), "linux/amd64")

	buf.Reset()
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), `"version": "v1.2.3"`)
}

func TestSchemaCommand(t *testing.T) {
	cmd := NewSchemaCommand("juju", func() ([]byte, error) { return []byte(`{"title":"[juju]"}`), nil })
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "{\"title\":\"[juju]\"}\n", buf.String())
}
