package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillctl/pkg/presenter"
	"github.com/jingkaihe/skillctl/pkg/skills"
)

var enableCmd = &cobra.Command{
	Use:   "enable <skill_name>",
	Short: "Enable a disabled skill",
	Long: `Move a skill from the .disabled directory back into the active skills
directory. Fails if the skill is not disabled or a skill of the same name is
already active.

Examples:
  skillctl enable writer`,
	Args: skillNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		if err := enableSkillCmd(cmd.Context(), out, registry, args[0]); err != nil {
			return reported(err)
		}
		return nil
	},
}

func enableSkillCmd(ctx context.Context, p presenter.Presenter, registry *skills.Registry, name string) error {
	if err := registry.Enable(ctx, name); err != nil {
		reportSkillError(p, "enable", name, err)
		return err
	}

	p.Success(fmt.Sprintf("Enabled: %s", name))
	return nil
}
