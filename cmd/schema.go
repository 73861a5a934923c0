package cmd

import (
	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/config"
	"github.com/grovetools/juju-prompt/juju"
	"github.com/spf13/cobra"
)

// NewSchemaCmd prints the JSON Schema of the [juju] table.
func NewSchemaCmd() *cobra.Command {
	return cli.NewSchemaCommand("juju", func() ([]byte, error) {
		return config.GenerateSchema("juju", &juju.Config{})
	})
}
