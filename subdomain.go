package fasturi

import (
	"strings"

	"braces.dev/errtrace"
)

// Subdomain returns the labels of host in front of its registered domain,
// i.e. in front of the second-level domain and the longest suffix of host
// found in tlds.
//
// For example, with tlds containing "co.uk", the subdomain of
// "a.b.example.co.uk" is "a.b", and "example.co.uk" has none.
//
// Returns ErrUnknownTLD if no suffix of host is in tlds.
func Subdomain(host string, tlds SuffixTable) (string, error) {
	labels := strings.Split(host, ".")
	boundary, ok := registeredDomainStart(labels, tlds)
	if !ok {
		return "", errUnknownTLD(host)
	}
	return joinLabels(labels[:boundary]), nil
}

// ReplaceSubdomain returns host with its subdomain replaced by subdomain.
// An empty subdomain removes the existing one along with its trailing ".".
//
// Returns ErrUnknownTLD if no suffix of host is in tlds.
func ReplaceSubdomain(host, subdomain string, tlds SuffixTable) (string, error) {
	labels := strings.Split(host, ".")
	boundary, ok := registeredDomainStart(labels, tlds)
	if !ok {
		return "", errUnknownTLD(host)
	}
	registeredDomain := joinLabels(labels[boundary:])
	if subdomain == "" {
		return registeredDomain, nil
	}
	return subdomain + "." + registeredDomain, nil
}

// registeredDomainStart returns the index of the second-level domain label,
// which is where the registered domain begins.
//
// Trailing joins of labels are tried longest first, so multi-label suffixes
// such as "co.uk" win over "uk". A host that is itself a suffix has no
// second-level domain, and the registered domain starts at label 0.
func registeredDomainStart(labels []string, tlds SuffixTable) (int, bool) {
	for i := 0; i < len(labels); i++ {
		if tlds.Contains(strings.ToLower(joinLabels(labels[i:]))) {
			return max(i-1, 0), true
		}
	}
	return 0, false
}

// Subdomain returns the subdomain of the host of c. See Subdomain.
//
// A Components value without a host has no subdomain.
func (c Components) Subdomain(tlds SuffixTable) (string, error) {
	host, ok := c.Host.Get()
	if !ok {
		return "", nil
	}
	return errtrace.Wrap2(Subdomain(host, tlds))
}

// WithSubdomain returns a copy of c whose host has its subdomain replaced
// by subdomain. The authority, if present, is rebuilt to carry the new host.
//
// Returns ErrMissingHost if c has no host, or ErrUnknownTLD if no suffix
// of the host is in tlds.
func (c Components) WithSubdomain(subdomain string, tlds SuffixTable) (Components, error) {
	host, ok := c.Host.Get()
	if !ok {
		return Components{}, errMissingHost("set subdomain")
	}
	host, err := ReplaceSubdomain(host, subdomain, tlds)
	if err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(c.WithHost(host))
}
