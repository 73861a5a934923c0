package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/errors"
	"github.com/grovetools/juju-prompt/juju"
	"github.com/spf13/cobra"
)

// PathsOutput lists the files the juju module reads and what was found in them.
type PathsOutput struct {
	ConfigFile   string   `json:"config_file"`
	SnapMetadata string   `json:"snap_metadata"`
	DataDir      string   `json:"data_dir,omitempty"`
	Version      string   `json:"version,omitempty"`
	Controller   string   `json:"controller,omitempty"`
	Model        string   `json:"model,omitempty"`
	APIEndpoint  string   `json:"api_endpoint,omitempty"`
	Controllers  []string `json:"controllers,omitempty"`
}

func NewPathsCmd() *cobra.Command {
	var snapMetadata string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the files read by the juju module",
		Long: `Print the files read by the juju module as JSON.

- config_file: the starship.toml holding the [juju] table
- snap_metadata: the snap metadata the version is read from
- data_dir: the Juju client data directory (absent when HOME is unset)
- version, controller, model: the values currently detected, when present
- api_endpoint: the first API address of the active controller
- controllers: every controller the client knows about`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cli.ResolveConfigPath(cli.GetOptions(cmd).ConfigFile)
			if err != nil {
				return err
			}

			output := PathsOutput{
				ConfigFile:   configFile,
				SnapMetadata: snapMetadata,
			}
			if v, ok := juju.ReadVersion(snapMetadata); ok {
				output.Version = v
			}
			if dir, ok := juju.BaseDir(os.LookupEnv); ok {
				output.DataDir = dir
				output.Controllers = juju.Controllers(dir)
				if active, ok := juju.ResolveActiveModel(dir); ok {
					output.Controller = active.Controller
					output.Model = active.Model
					if endpoint, ok := juju.APIEndpoint(dir, active.Controller); ok {
						output.APIEndpoint = endpoint
					}
				}
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal paths to JSON")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapMetadata, "snap-metadata", juju.SnapMetadataPath, "Path to the Juju snap metadata")
	_ = cmd.Flags().MarkHidden("snap-metadata")

	return cmd
}
