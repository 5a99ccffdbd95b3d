package main

import (
	"github.com/philipparndt/clipview/internal/session"
	"github.com/spf13/cobra"
)

var edits session.Edits

var planesCmd = &cobra.Command{
	Use:   "planes <scene.yaml>",
	Short: "Print the clipping planes of every layer",
	Long:  `Load the scene, apply the given slider edits and print the six clipping
planes of each eligible layer.

Example:
  clipview planes scene.yaml --enable y --set y=10:90 --set x=0:50`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScene,
	RunE:              runPlanes,
}

func init() {
	planesCmd.Flags().StringSliceVar(&edits.Enable, "enable", nil, "turn clipping on for these axes")
	planesCmd.Flags().StringSliceVar(&edits.Disable, "disable", nil, "turn clipping off for these axes")
	planesCmd.Flags().StringArrayVar(&edits.Set, "set", nil, "set slider thumbs, as axis=low:high")
	_ = planesCmd.RegisterFlagCompletionFunc("enable", completeAxes)
	_ = planesCmd.RegisterFlagCompletionFunc("disable", completeAxes)
	rootCmd.AddCommand(planesCmd)
}

func runPlanes(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Apply(edits); err != nil {
		return err
	}
	return s.WritePlanes(cmd.OutOrStdout())
}
