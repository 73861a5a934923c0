package starship

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/juju"
	"github.com/grovetools/juju-prompt/logging"
	"github.com/spf13/cobra"
)

// formatAnchors are prompt format entries the module is inserted after,
// in order of preference.
var formatAnchors = []string{"$kubernetes\\", "$git_metrics\\", "$git_status\\"}

// NewStarshipCmd creates the starship command and its subcommands.
// The binaryName parameter is used to configure the command in starship.toml
// (e.g., "juju-prompt" will generate "command = \"juju-prompt render\"").
func NewStarshipCmd(binaryName string) *cobra.Command {
	starshipCmd := &cobra.Command{
		Use:   "starship",
		Short: "Manage Starship prompt integration",
		Long:  `Provides commands to integrate the Juju segment with the Starship prompt.`,
	}

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install the Juju module to your starship.toml",
		Long: `Appends a custom module to your starship.toml configuration file to display
the Juju version and active model in your shell prompt. It will also attempt to
add the module to your main prompt format.`,
		Example: `# Install into the default configuration
juju-prompt starship install

# Install into a specific file
juju-prompt starship install --config ~/dotfiles/starship.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cli.ResolveConfigPath(cli.GetOptions(cmd).ConfigFile)
			if err != nil {
				return fmt.Errorf("could not resolve starship config path: %w", err)
			}
			return Install(configPath, binaryName, cmd.OutOrStdout())
		},
	}

	starshipCmd.AddCommand(installCmd)

	return starshipCmd
}

// moduleConfig returns the [custom.juju] table for binaryName.
func moduleConfig(binaryName string) string {
	return fmt.Sprintf(`
# Added by '%s starship install'
[custom.juju]
description = "Shows the Juju version and active model"
command = "%s render"
when = "test -f %s"
format = "$output"
`, binaryName, binaryName, juju.SnapMetadataPath)
}

// Install adds the custom module to the starship configuration at
// configPath and reports what it did on out.
func Install(configPath, binaryName string, out io.Writer) error {
	pretty := logging.NewPrettyLogger().WithWriter(out)

	contentBytes, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("starship config not found at %s. Please ensure starship is installed and configured", configPath)
		}
		return fmt.Errorf("could not read starship config: %w", err)
	}
	content := string(contentBytes)
	block := moduleConfig(binaryName)
	command := fmt.Sprintf(`command = "%s render"`, binaryName)

	// --- 1. Add or update the custom module definition ---
	if headerIdx := strings.Index(content, "[custom.juju]"); headerIdx != -1 {
		if !strings.Contains(content, command) {
			// Different command exists - don't overwrite a hand-written module
			pretty.WarnPretty("[custom.juju] already exists with a different command.")
			pretty.InfoPretty("Keeping existing configuration to avoid conflicts.")
		} else {
			// Same command - replace the entire section, including our marker comment
			startIdx := headerIdx
			marker := fmt.Sprintf("\n# Added by '%s starship install'\n", binaryName)
			if markerIdx := strings.LastIndex(content[:headerIdx], marker); markerIdx != -1 && markerIdx+len(marker) == headerIdx {
				startIdx = markerIdx
			}

			endIdx := len(content)
			if next := strings.Index(content[headerIdx+1:], "\n["); next != -1 {
				endIdx = headerIdx + 1 + next
			}
			content = content[:startIdx] + block + content[endIdx:]
			pretty.Success("Updated existing Juju starship module configuration.")
		}
	} else {
		content += block
		pretty.Success("Added [custom.juju] module to starship config.")
	}

	// --- 2. Add the module to the prompt format if not already present ---
	if strings.Contains(content, "${custom.juju}") || strings.Contains(content, "$custom.juju") {
		pretty.Success("Juju module already in starship format.")
	} else if anchor, ok := findAnchor(content); ok {
		content = strings.Replace(content, anchor, anchor+"\n${custom.juju}\\", 1)
		pretty.Success("Added Juju module to starship format.")
	} else {
		pretty.WarnPretty("Could not automatically add '${custom.juju}' to your starship format.")
		pretty.Path("Please add it manually to the 'format' string in", configPath)
		pretty.Code("${custom.juju}\\")
	}

	// --- 3. Write the updated config back ---
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write updated starship config: %w", err)
	}

	fmt.Fprintln(out)
	pretty.Path("Updated", configPath)
	pretty.InfoPretty("Please restart your shell to see the changes.")
	return nil
}

func findAnchor(content string) (string, bool) {
	for _, anchor := range formatAnchors {
		if strings.Contains(content, anchor) {
			return anchor, true
		}
	}
	return "", false
}
