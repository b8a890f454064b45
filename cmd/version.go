package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dougvj/embed/version"
)

// versionCmd reports the tool version, matching the banner stamped into
// generated artifacts.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the embed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("embed %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
