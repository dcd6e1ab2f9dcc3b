package main

import (
	"fmt"

	"github.com/elliotwutingfeng/go-fasturi"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize PATH...",
		Short: "Remove dot segments from paths",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, path := range args {
				fmt.Fprintln(cmd.OutOrStdout(), fasturi.RemoveDotSegments(path))
			}
		},
	}
}
