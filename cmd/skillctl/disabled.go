package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillctl/pkg/presenter"
	"github.com/jingkaihe/skillctl/pkg/skills"
)

var disabledCmd = &cobra.Command{
	Use:   "disabled",
	Short: "List disabled skills",
	Long:  `List the skills that have been moved into the .disabled directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		config := getListConfigFromFlags(cmd)
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		if err := listDisabledCmd(cmd.Context(), out, registry, config); err != nil {
			return reported(err)
		}
		return nil
	},
}

func init() {
	addListFlags(disabledCmd.Flags())
}

func listDisabledCmd(ctx context.Context, p presenter.Presenter, registry *skills.Registry, config *ListConfig) error {
	filter, err := skills.NewFilter(config.Filter)
	if err != nil {
		p.Error(err, "Invalid filter")
		return err
	}

	listing, err := registry.ListDisabled(ctx)
	if err != nil {
		p.Error(err, "Failed to list disabled skills")
		return err
	}

	if !listing.Exists {
		p.Info("No disabled skills directory found")
		return nil
	}
	listing = filter.Disabled(listing)

	p.Section("Disabled Skills")
	p.Newline()
	for _, name := range listing.Skills {
		p.Item(skillLine(registry.DisabledPath(name), name, config.Details))
	}

	if filter != nil && len(listing.Skills) == 0 {
		p.Warning(fmt.Sprintf("No disabled skills match '%s'", filter))
	}

	p.Newline()
	p.Info(fmt.Sprintf("Total: %d disabled skills", len(listing.Skills)))
	return nil
}
