package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSchemaCommand creates a 'schema' command that prints the JSON Schema
// produced by generate.
func NewSchemaCommand(module string, generate func() ([]byte, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: fmt.Sprintf("Print the JSON Schema of the [%s] configuration table", module),
		Long: fmt.Sprintf(`Prints the JSON Schema describing the [%s] table of starship.toml.
Editors can use it to validate and complete the configuration.`, module),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := generate()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
