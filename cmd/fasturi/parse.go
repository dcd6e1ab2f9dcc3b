package main

import (
	"github.com/elliotwutingfeng/go-fasturi"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse URI...",
		Short: "Show the components of URI references",
		Long: `Split each URI reference into scheme, authority, userinfo, host, port,
path, query and fragment, and print them. Absent components are dimmed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, uri := range args {
				c, err := fasturi.Parse(uri)
				if err != nil {
					return err
				}
				fasturi.FprintComponents(cmd.OutOrStdout(), uri, c)
			}
			return nil
		},
	}
}
