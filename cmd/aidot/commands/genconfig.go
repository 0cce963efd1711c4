package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/aidot/pkg/commands"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{
				PackRoot: packRoot,
				Write:    write,
			})
			if err != nil {
				return err
			}

			if result.WrittenPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Written %s\n", result.WrittenPath)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)

	return cmd
}
