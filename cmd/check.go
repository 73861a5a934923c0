package cmd

import (
	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/config"
	"github.com/grovetools/juju-prompt/juju"
	"github.com/grovetools/juju-prompt/logging"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the `check` command, which validates the [juju] table
// and its format string.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the juju configuration",
		Long: `Load the [juju] table of starship.toml and render its format with sample
values. Unlike render, any problem is reported and the command fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ResolveConfigPath(cli.GetOptions(cmd).ConfigFile)
			if err != nil {
				return err
			}

			cfg := juju.DefaultConfig()
			if err := config.LoadModule(path, "juju", &cfg); err != nil {
				return err
			}
			if err := cfg.Check(); err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success("juju configuration is valid")
			pretty.Path("Config", path)
			return nil
		},
	}
}
