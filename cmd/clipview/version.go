package main

import (
	"fmt"

	"github.com/philipparndt/clipview/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "clipview %s\n", version.GetFullVersion())
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.GitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
