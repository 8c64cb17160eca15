package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd returns the caller's installed uxngo version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed uxngo version",
	Long:  "Run `uxngo version` to get your current uxngo version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(currentReleaseVersion)
	},
}
