package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/aidot/pkg/commands"
	"github.com/arthur-debert/aidot/pkg/style"
)

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "skills",
		Short:   MsgSkillsShort,
		GroupID: "core",
	}

	cmd.AddCommand(newSkillsListCmd())
	cmd.AddCommand(newSkillsShowCmd())

	return cmd
}

func newSkillsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgSkillsListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := commands.ListSkills(commands.SkillsOptions{PackRoot: packRoot})
			if err != nil {
				return fmt.Errorf(MsgErrSkills, err)
			}

			renderer := style.NewRenderer(style.DetectFormat(os.Stdout))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSkillList(skills))
			return nil
		},
	}
}

func newSkillsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: MsgSkillsShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := commands.ShowSkill(commands.SkillsOptions{PackRoot: packRoot}, args[0])
			if err != nil {
				return fmt.Errorf(MsgErrSkills, err)
			}

			rendered := style.RenderMarkdown(content, style.DetectFormat(os.Stdout))
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
