package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/aidot/pkg/commands"
	"github.com/arthur-debert/aidot/pkg/style"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := commands.Status(commands.StatusOptions{PackRoot: packRoot})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			renderer := style.NewRenderer(style.DetectFormat(os.Stdout))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStatus(entries))
			return nil
		},
	}
}
