package main

import (
	"fmt"
	"strings"

	"github.com/elliotwutingfeng/go-fasturi"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// knownTLDs is the suffix table used when no other table is selected.
var knownTLDs = []string{
	"com", "org", "net", "int", "edu", "gov", "mil",
	"co.uk", "org.uk", "gov.uk", "ltd.uk", "plc.uk", "me.uk",
	"com.au", "net.au", "org.au",
	"de", "ca", "us", "eu", "es", "it", "fr", "nl", "be", "at", "dk", "ch",
	"se", "no", "fi", "jp", "cn", "in", "ru", "br", "au",
	"info", "name", "io", "xxx", "id", "me", "mobi", "cc", "ws", "fm", "tv",
	"tk", "nu",
}

type suffixFlags struct {
	tlds       []string
	suffixFile string
	psl        bool
	private    bool
}

// table returns the suffix table selected by the flags. A suffix file takes
// precedence over the public suffix list, which takes precedence over --tld.
func (f suffixFlags) table(fs afero.Fs) (fasturi.SuffixTable, error) {
	switch {
	case f.suffixFile != "":
		suffixes, err := fasturi.LoadSuffixes(fs, fasturi.SuffixListParams{
			FilePath:             f.suffixFile,
			IncludePrivateSuffix: f.private,
		})
		if err != nil {
			return nil, err
		}
		return suffixes, nil
	case f.psl:
		return fasturi.PublicSuffixList{IncludePrivateSuffix: f.private}, nil
	case len(f.tlds) != 0:
		return fasturi.NewSuffixes(f.tlds...), nil
	default:
		return fasturi.NewSuffixes(knownTLDs...), nil
	}
}

func newSubdomainCmd() *cobra.Command {
	var (
		flags     suffixFlags
		subdomain string
	)

	cmd := &cobra.Command{
		Use:   "subdomain HOST",
		Short: "Show or replace the subdomain of a host",
		Long: `Print the subdomain of HOST, or with --set, print HOST with its subdomain
replaced. HOST may also be a URI with an authority, in which case the whole
URI is printed with its host rewritten.

Usage:
  fasturi subdomain sub.example.co.uk                    # sub
  fasturi subdomain --set blog https://www.example.com/  # https://blog.example.com/
  fasturi subdomain --set "" sub.example.com             # example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tlds, err := flags.table(afero.NewOsFs())
			if err != nil {
				return fmt.Errorf("failed to load suffix table: %w", err)
			}
			result, err := handleSubdomain(args[0], subdomain, cmd.Flags().Changed("set"), tlds)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&subdomain, "set", "", "Replace the subdomain; an empty value removes it")
	cmd.Flags().StringArrayVar(&flags.tlds, "tld", nil, "Known top level domain suffix (repeatable)")
	cmd.Flags().StringVar(&flags.suffixFile, "suffix-file", "", "Path to a public suffix list formatted file")
	cmd.Flags().BoolVar(&flags.psl, "psl", false, "Use the embedded public suffix list")
	cmd.Flags().BoolVar(&flags.private, "private", false, "Include private suffixes of the public suffix list")
	return cmd
}

func handleSubdomain(arg, subdomain string, set bool, tlds fasturi.SuffixTable) (string, error) {
	if !strings.Contains(arg, "//") {
		if set {
			return fasturi.ReplaceSubdomain(arg, subdomain, tlds)
		}
		return fasturi.Subdomain(arg, tlds)
	}

	c, err := fasturi.Parse(arg)
	if err != nil {
		return "", err
	}
	if set {
		c, err = c.WithSubdomain(subdomain, tlds)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	}
	return c.Subdomain(tlds)
}
