package cmd

import (
	"fmt"

	"github.com/prometheus/common/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pewfit %s\n", version.Version)
		fmt.Printf("  commit:  %s\n", version.Revision)
		fmt.Printf("  built:   %s\n", version.BuildDate)
		fmt.Printf("  go:      %s\n", version.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
