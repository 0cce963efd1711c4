package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/aidot/pkg/commands"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "render",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := commands.Render(commands.RenderOptions{PackRoot: packRoot})
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
