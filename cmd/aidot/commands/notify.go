package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/aidot/pkg/notify"
)

func newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "notify <event>",
		Short:     MsgNotifyShort,
		Long:      MsgNotifyLong,
		GroupID:   "misc",
		Hidden:    true,
		ValidArgs: []string{notify.EventCompletion, notify.EventNeedsAttention},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			// Fire and forget: a failed notification must never fail
			// the hook invocation
			notify.Run(args[0], os.Stdin, notify.NewNotifier())
		},
	}
}
