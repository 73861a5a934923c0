package cli

import (
	"github.com/grovetools/juju-prompt/config"
	"github.com/grovetools/juju-prompt/logging"
	"github.com/grovetools/juju-prompt/util/pathutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for prompt commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to starship.toml (default: $STARSHIP_CONFIG or ~/.config/starship.toml)")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the logger for a command, honouring --verbose and --json.
// With --verbose the logger writes debug output to the command's stderr.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	component := cmd.Root().Name()
	opts := GetOptions(cmd)

	var entry *logrus.Entry
	if opts.Verbose {
		entry = logging.NewVerboseLogger(component, cmd.ErrOrStderr())
	} else {
		entry = logging.NewLogger(component)
	}
	if opts.JSONOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// ResolveConfigPath returns the configuration file to use: the --config flag
// when given, otherwise the default location.
func ResolveConfigPath(configFile string) (string, error) {
	if configFile != "" {
		return pathutil.Expand(configFile)
	}
	return config.DefaultPath()
}
