package fasturi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var knownTLDs = NewSuffixes("com", "org", "net", "co.uk")

type subdomainTest struct {
	host     string
	tlds     SuffixTable
	expected string
	err      error
}

var subdomainTests = []subdomainTest{
	{host: "sub.example.com", tlds: knownTLDs, expected: "sub"},
	{host: "example.com", tlds: knownTLDs, expected: ""},
	{host: "sub.example.co.uk", tlds: knownTLDs, expected: "sub"},
	{host: "sub.example.co.uk", tlds: NewSuffixes("co.uk"), expected: "sub"},
	{host: "sub.example.co.uk", tlds: NewSuffixes("uk", "co.uk"), expected: "sub"},
	{host: "sub.example.co.uk", tlds: NewSuffixes("uk"), expected: "sub.example"},
	{host: "a.b.c.example.com", tlds: NewSuffixes("com"), expected: "a.b.c"},
	{host: "A.B.Example.COM", tlds: knownTLDs, expected: "A.B"},
	{host: "example.unknown", tlds: NewSuffixes("com", "org"), err: ErrUnknownTLD},
	{host: "com", tlds: knownTLDs, expected: ""},
	{host: "", tlds: knownTLDs, err: ErrUnknownTLD},
	{host: "co.uk", tlds: knownTLDs, expected: ""},
	{host: "co.uk", tlds: NewSuffixes("co.uk"), expected: ""},
	{host: "COM", tlds: NewSuffixes("com"), expected: ""},
	{host: "uk", tlds: PublicSuffixList{}, expected: ""},
	{host: "maps.google.com", tlds: PublicSuffixList{}, expected: "maps"},
	{host: "a.subdomain.example.ac.uk", tlds: PublicSuffixList{}, expected: "a.subdomain"},
	{host: "google.blogspot.com", tlds: PublicSuffixList{}, expected: "google"},
	{host: "google.blogspot.com", tlds: PublicSuffixList{IncludePrivateSuffix: true}, expected: ""},
}

func TestSubdomain(t *testing.T) {
	for _, test := range subdomainTests {
		subdomain, err := Subdomain(test.host, test.tlds)
		if !errors.Is(err, test.err) {
			t.Errorf("Subdomain(%q) error = %v, want %v", test.host, err, test.err)
			continue
		}
		if subdomain != test.expected {
			t.Errorf("Subdomain(%q) = %q, want %q", test.host, subdomain, test.expected)
		}
	}
}

type replaceSubdomainTest struct {
	host      string
	subdomain string
	expected  string
	err       error
}

var replaceSubdomainTests = []replaceSubdomainTest{
	{host: "example.com", subdomain: "blog", expected: "blog.example.com"},
	{host: "sub.example.com", subdomain: "blog", expected: "blog.example.com"},
	{host: "sub.example.com", subdomain: "", expected: "example.com"},
	{host: "a.b.example.com", subdomain: "x.y", expected: "x.y.example.com"},
	{host: "sub.example.co.uk", subdomain: "blog", expected: "blog.example.co.uk"},
	{host: "example.unknown", subdomain: "blog", err: ErrUnknownTLD},
	{host: "com", subdomain: "blog", expected: "blog.com"},
	{host: "co.uk", subdomain: "a.b", expected: "a.b.co.uk"},
	{host: "com", subdomain: "", expected: "com"},
}

func TestReplaceSubdomain(t *testing.T) {
	for _, test := range replaceSubdomainTests {
		host, err := ReplaceSubdomain(test.host, test.subdomain, knownTLDs)
		if !errors.Is(err, test.err) {
			t.Errorf("ReplaceSubdomain(%q, %q) error = %v, want %v", test.host, test.subdomain, err, test.err)
			continue
		}
		if host != test.expected {
			t.Errorf("ReplaceSubdomain(%q, %q) = %q, want %q", test.host, test.subdomain, host, test.expected)
		}
	}
}

func TestComponentsSubdomain(t *testing.T) {
	c, err := Parse("http://sub.example.com")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if sub, err := c.Subdomain(knownTLDs); err != nil || sub != "sub" {
		t.Errorf("Subdomain() = (%q, %v), want (%q, nil)", sub, err, "sub")
	}

	if sub, err := (Components{Path: Some("/a")}).Subdomain(knownTLDs); err != nil || sub != "" {
		t.Errorf("Subdomain() without host = (%q, %v), want (\"\", nil)", sub, err)
	}

	if _, err := (Components{Host: Some("example.unknown")}).Subdomain(knownTLDs); !errors.Is(err, ErrUnknownTLD) {
		t.Errorf("Subdomain() error = %v, want %v", err, ErrUnknownTLD)
	}
}

type withSubdomainTest struct {
	name      string
	uri       string
	subdomain string
	expected  string
	authority Optional[string]
	err       error
}

var withSubdomainTests = []withSubdomainTest{
	{"add", "http://example.com", "blog", "http://blog.example.com", Some("blog.example.com"), nil},
	{"replace", "http://sub.example.com/a?b#c", "blog", "http://blog.example.com/a?b#c", Some("blog.example.com"), nil},
	{"remove", "http://sub.example.com", "", "http://example.com", Some("example.com"), nil},
	{"complex tld", "http://sub.example.co.uk", "blog", "http://blog.example.co.uk", Some("blog.example.co.uk"), nil},
	{"keeps userinfo and port", "https://u:p@www.example.org:8443/", "api", "https://u:p@api.example.org:8443/", Some("u:p@api.example.org:8443"), nil},
	{"unknown tld", "http://example.unknown", "blog", "", None[string](), ErrUnknownTLD},
	{"no host", "/just/a/path", "blog", "", None[string](), ErrMissingHost},
}

func TestComponentsWithSubdomain(t *testing.T) {
	for _, test := range withSubdomainTests {
		in, err := Parse(test.uri)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", test.uri, err)
		}
		out, err := in.WithSubdomain(test.subdomain, knownTLDs)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: WithSubdomain() error = %v, want %v", test.name, err, test.err)
			continue
		}
		if err != nil {
			if diff := cmp.Diff(out, Components{}); diff != "" {
				t.Errorf("%s: WithSubdomain() returned partial result (-got +want):\n%s", test.name, diff)
			}
			continue
		}
		if output := out.String(); output != test.expected {
			t.Errorf("%s: Output %q not equal to expected %q", test.name, output, test.expected)
		}
		if out.Authority != test.authority {
			t.Errorf("%s: WithSubdomain() authority = %v, want %v", test.name, out.Authority, test.authority)
		}
		if s := in.String(); s != test.uri {
			t.Errorf("%s: WithSubdomain() modified its receiver: %q", test.name, s)
		}
	}
}
