package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newRootCmd returns the base command with every subcommand attached.
func newRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "fasturi",
		Short: "fasturi - URI parsing, resolution and subdomain rewriting",
		Long: `fasturi splits URI references into their components, resolves relative
references against a base, removes dot segments from paths, rewrites
subdomains using a table of known top level domains and merges query strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newParseCmd(),
		newResolveCmd(),
		newNormalizeCmd(),
		newSubdomainCmd(),
		newMergeQueryCmd(),
	)
	return rootCmd
}
