package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/aidot/pkg/commands"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/style"
)

func newUpCmd() *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:     "up",
		Short:   MsgUpShort,
		Long:    MsgUpLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.up")
			logger.Info().
				Bool("dryRun", dryRun).
				Bool("force", force).
				Msg("Starting activation")

			mapping, err := commands.Up(commands.UpOptions{
				PackRoot: packRoot,
				DryRun:   dryRun,
				Force:    force,
				NoBackup: noBackup,
			})
			if err != nil {
				return fmt.Errorf(MsgErrUp, err)
			}

			renderer := style.NewRenderer(style.DetectFormat(os.Stdout))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderMapping(mapping))

			if len(mapping) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNothingToDo)
			} else if !dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), MsgUpDoneFormat, len(mapping))
			}
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBackup, "no-backup", false, MsgFlagNoBackup)

	return cmd
}
