package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillctl/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of skillctl in JSON format.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := version.Get()
		json, err := info.JSON()
		if err != nil {
			out.Error(err, "Failed to format version info")
			return reported(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), json)
		return nil
	},
}
