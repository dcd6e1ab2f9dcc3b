package main

import (
	"fmt"

	"github.com/elliotwutingfeng/go-fasturi"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve BASE REF",
		Short: "Resolve a reference against a base URI",
		Long: `Resolve REF against BASE following RFC 3986 section 5.2 and print the
resulting URI. Dot segments are removed from the resulting path.

Usage:
  fasturi resolve http://a/b/c/d;p?q ../g   # http://a/b/g`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fasturi.ResolveString(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}
