package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/config"
	"github.com/grovetools/juju-prompt/errors"
	"github.com/grovetools/juju-prompt/format"
	"github.com/grovetools/juju-prompt/juju"
	"github.com/grovetools/juju-prompt/style"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the `render` command invoked by the prompt.
func NewRenderCmd() *cobra.Command {
	var plain bool
	var snapMetadata string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the Juju prompt segment",
		Long: `Print the Juju segment for the current shell.

Nothing is printed when Juju is not installed, the module is disabled or the
configured format cannot be rendered. Rendering errors are logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			res := newModule(cmd, logger, snapMetadata).Run()
			logger.WithField("state", res.State.String()).Debug("Rendered juju module")
			if res.State != juju.StateRendered {
				return nil
			}

			out := cmd.OutOrStdout()
			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.Marshal(res.Segments)
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode segments")
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			if plain {
				fmt.Fprint(out, format.Plain(res.Segments))
				return nil
			}

			style.InitColorProfile()
			fmt.Fprint(out, format.ANSI(res.Segments))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the segment without styling")
	cmd.Flags().StringVar(&snapMetadata, "snap-metadata", juju.SnapMetadataPath, "Path to the Juju snap metadata")
	_ = cmd.Flags().MarkHidden("snap-metadata")

	return cmd
}

// newModule builds the juju module from the configuration, reporting
// template errors through logger.
func newModule(cmd *cobra.Command, logger *logrus.Entry, snapMetadata string) *juju.Module {
	module := juju.New(loadModuleConfig(cmd, logger))
	module.SnapMetadataPath = snapMetadata
	module.Report = func(err error) {
		logger.WithError(err).Error("Error in module `juju`")
	}
	return module
}

// loadModuleConfig returns the [juju] table from the prompt configuration,
// or the defaults when it cannot be loaded.
func loadModuleConfig(cmd *cobra.Command, logger *logrus.Entry) juju.Config {
	cfg := juju.DefaultConfig()

	path, err := cli.ResolveConfigPath(cli.GetOptions(cmd).ConfigFile)
	if err != nil {
		logger.WithError(err).Warn("Could not determine config path, using defaults")
		return cfg
	}

	if err := config.LoadModule(path, "juju", &cfg); err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			logger.WithField("path", path).Debug("No config file, using defaults")
		} else {
			logger.WithError(err).WithField("path", path).Warn("Invalid juju config, using defaults")
		}
		return juju.DefaultConfig()
	}
	return cfg
}
