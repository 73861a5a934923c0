package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/grovetools/juju-prompt/cli"
	"github.com/grovetools/juju-prompt/format"
	"github.com/grovetools/juju-prompt/juju"
	"github.com/grovetools/juju-prompt/style"
	"github.com/grovetools/juju-prompt/watch"
	"github.com/spf13/cobra"
)

// NewWatchCmd creates the `watch` command, which prints a fresh segment
// line whenever the Juju state or the configuration changes.
func NewWatchCmd() *cobra.Command {
	var plain bool
	var snapMetadata string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the segment again whenever it may have changed",
		Long: `Print the Juju segment, then print it again on its own line each time the
snap metadata, the Juju client state or the configuration file changes.
An empty line is printed while the segment is hidden. Meant for status lines
that read a stream, such as tmux or i3blocks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			configPath, err := cli.ResolveConfigPath(cli.GetOptions(cmd).ConfigFile)
			if err != nil {
				return err
			}
			if !plain {
				style.InitColorProfile()
			}

			out := cmd.OutOrStdout()
			render := func() {
				segs, _ := newModule(cmd, logger, snapMetadata).Segments()
				writeLine(out, segs, plain)
			}

			files := []string{configPath, snapMetadata}
			if dir, ok := juju.BaseDir(os.LookupEnv); ok {
				files = append(files,
					filepath.Join(dir, "controllers.yaml"),
					filepath.Join(dir, "models.yaml"))
			}

			changes := make(chan string, 1)
			w, err := watch.New(files, debounce, func(file string) {
				select {
				case changes <- file:
				default:
				}
			})
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go w.Start(ctx)

			render()
			for {
				select {
				case file := <-changes:
					logger.WithField("file", file).Debug("Re-rendering after change")
					render()
				case <-ctx.Done():
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the segment without styling")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-rendering")
	cmd.Flags().StringVar(&snapMetadata, "snap-metadata", juju.SnapMetadataPath, "Path to the Juju snap metadata")
	_ = cmd.Flags().MarkHidden("snap-metadata")

	return cmd
}

func writeLine(out io.Writer, segs []format.Segment, plain bool) {
	if plain {
		fmt.Fprintln(out, format.Plain(segs))
		return
	}
	fmt.Fprintln(out, format.ANSI(segs))
}
