package main

import (
	"github.com/spf13/cobra"
)

var boundsCmd = &cobra.Command{
	Use:               "bounds <scene.yaml>",
	Short:             "Print the spatial and world bounds of every layer",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScene,
	RunE:              runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)
}

func runBounds(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	return s.WriteBounds(cmd.OutOrStdout())
}
