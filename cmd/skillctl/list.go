package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jingkaihe/skillctl/pkg/presenter"
	"github.com/jingkaihe/skillctl/pkg/skills"
)

// ListConfig holds the display options shared by list and disabled
type ListConfig struct {
	Filter  string
	Details bool
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Filter:  "",
		Details: false,
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active skills",
	Long: `List the skill directories of the active skills directory, followed by
any symlinks it contains together with their link targets.

Examples:
  skillctl list
  skillctl list --filter 'doc-*'
  skillctl list --details`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		config := getListConfigFromFlags(cmd)
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		if err := listActiveCmd(cmd.Context(), out, registry, config); err != nil {
			return reported(err)
		}
		return nil
	},
}

func init() {
	addListFlags(listCmd.Flags())
}

func addListFlags(flags *pflag.FlagSet) {
	defaults := NewListConfig()
	flags.StringP("filter", "f", defaults.Filter, "Only show skills whose name matches the glob pattern")
	flags.BoolP("details", "d", defaults.Details, "Show the description from each skill's SKILL.md")
}

func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := NewListConfig()
	if filter, err := cmd.Flags().GetString("filter"); err == nil {
		config.Filter = filter
	}
	if details, err := cmd.Flags().GetBool("details"); err == nil {
		config.Details = details
	}
	return config
}

func listActiveCmd(ctx context.Context, p presenter.Presenter, registry *skills.Registry, config *ListConfig) error {
	filter, err := skills.NewFilter(config.Filter)
	if err != nil {
		p.Error(err, "Invalid filter")
		return err
	}

	listing, err := registry.ListActive(ctx)
	if err != nil {
		p.Error(err, "Failed to list active skills")
		return err
	}
	listing = filter.Active(listing)

	p.Section("Active Skills")
	p.Newline()
	for _, name := range listing.Skills {
		p.Item(skillLine(registry.ActivePath(name), name, config.Details))
	}

	if len(listing.Symlinks) > 0 {
		p.Newline()
		p.Section("Symlinks")
		for _, link := range listing.Symlinks {
			p.Item(fmt.Sprintf("%s → %s", link.Name, link.Target))
		}
	}

	if filter != nil && len(listing.Skills) == 0 && len(listing.Symlinks) == 0 {
		p.Warning(fmt.Sprintf("No skills match '%s'", filter))
	}

	p.Newline()
	p.Info(fmt.Sprintf("Total: %d skills + %d symlinks", len(listing.Skills), len(listing.Symlinks)))
	return nil
}

// skillLine formats a listed skill. With details it appends the SKILL.md
// description, and the frontmatter name when it differs from the directory.
func skillLine(dir, name string, details bool) string {
	if !details {
		return name
	}
	metadata, err := skills.LoadMetadata(dir)
	if err != nil {
		return name
	}

	line := name
	if metadata.Name != "" && metadata.Name != name {
		line = fmt.Sprintf("%s (%s)", line, metadata.Name)
	}
	if metadata.Description != "" {
		line = fmt.Sprintf("%s - %s", line, metadata.Description)
	}
	return line
}
