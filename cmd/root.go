package cmd

import (
	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/starship"
	"github.com/grovetools/juju-prompt/version"
	"github.com/spf13/cobra"
)

// BinaryName is the name the prompt invokes the binary by.
const BinaryName = "juju-prompt"

// NewRootCmd assembles the juju-prompt command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		BinaryName,
		"Juju status segment for the Starship prompt",
	)

	info := version.GetInfo()
	cli.SetVersionTemplate(rootCmd, info)

	rootCmd.AddCommand(NewRenderCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(starship.NewStarshipCmd(BinaryName))
	rootCmd.AddCommand(cli.NewVersionCommand(BinaryName, info))

	return rootCmd
}
