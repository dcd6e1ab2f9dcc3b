package main

import (
	"fmt"
	"strings"

	"github.com/elliotwutingfeng/go-fasturi"
	"github.com/spf13/cobra"
)

func newMergeQueryCmd() *cobra.Command {
	var appendValues bool

	cmd := &cobra.Command{
		Use:   "merge-query A B",
		Short: "Merge the query parameters of B into A",
		Long: `Merge the query parameters of B into A and print the result. By default
keys of B replace every value of the same key in A; with --append they are
added after them. When A contains a '?' it is treated as a URI and the whole
URI is printed with its query replaced by the merged one.

Usage:
  fasturi merge-query "a=1&b=2" "b=3&c=4"            # a=1&b=3&c=4
  fasturi merge-query --append "/p?a=1&b=2" "b=3"    # /p?a=1&b=2&b=3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := fasturi.Replace
			if appendValues {
				mode = fasturi.Append
			}
			result, err := handleMergeQuery(args[0], args[1], mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&appendValues, "append", false, "Keep values of A for keys also present in B")
	return cmd
}

func handleMergeQuery(a, b string, mode fasturi.MergeMode) (string, error) {
	params, err := fasturi.ToQuery(b)
	if err != nil {
		return "", err
	}

	if strings.IndexByte(a, '?') == -1 {
		current, err := fasturi.ToQuery(a)
		if err != nil {
			return "", err
		}
		return fasturi.MergeQuery(current, params, mode).Encode(), nil
	}

	c, err := fasturi.ToComponents(a)
	if err != nil {
		return "", err
	}
	c, err = c.MergeQuery(params, mode)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
