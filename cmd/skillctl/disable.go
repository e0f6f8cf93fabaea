package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillctl/pkg/presenter"
	"github.com/jingkaihe/skillctl/pkg/skills"
)

var disableCmd = &cobra.Command{
	Use:   "disable <skill_name>",
	Short: "Disable an active skill",
	Long: `Move a skill from the active skills directory into its .disabled
directory, creating .disabled on first use. System directories (names starting
with '.') and symlinks are never moved.

Examples:
  skillctl disable writer`,
	Args: skillNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		if err := disableSkillCmd(cmd.Context(), out, registry, args[0]); err != nil {
			return reported(err)
		}
		return nil
	},
}

func disableSkillCmd(ctx context.Context, p presenter.Presenter, registry *skills.Registry, name string) error {
	if err := registry.Disable(ctx, name); err != nil {
		reportSkillError(p, "disable", name, err)
		return err
	}

	p.Success(fmt.Sprintf("Disabled: %s", name))
	return nil
}
