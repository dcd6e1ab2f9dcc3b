package fasturi

import (
	"bufio"
	"log"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/afero"
	"github.com/tidwall/hashmap"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

const privateDomainsMarker string = "// ===BEGIN PRIVATE DOMAINS==="

// SuffixTable is a read-only set of known top level domain suffixes,
// such as "com" or "co.uk".
//
// Contains is called with lower-case suffixes and must be safe
// for concurrent use.
type SuffixTable interface {
	Contains(suffix string) bool
}

// Suffixes is an in-memory SuffixTable.
//
// A Suffixes value must not be modified once it is shared; lookups
// are then safe for concurrent use.
type Suffixes struct {
	set hashmap.Map[string, struct{}]
}

// NewSuffixes creates a table holding the given suffixes.
// Suffixes are stored lower-cased; a leading "." is ignored.
func NewSuffixes(suffixes ...string) *Suffixes {
	s := &Suffixes{}
	for _, suffix := range suffixes {
		s.add(suffix)
	}
	return s
}

func (s *Suffixes) add(suffix string) {
	suffix = strings.ToLower(strings.TrimPrefix(suffix, "."))
	if suffix == "" {
		return
	}
	s.set.Set(suffix, struct{}{})
}

// Contains reports whether suffix is in the table.
func (s *Suffixes) Contains(suffix string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set.Get(strings.ToLower(suffix))
	return ok
}

// Len returns the number of suffixes in the table.
func (s *Suffixes) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Len()
}

// List returns the suffixes in the table, in no particular order.
func (s *Suffixes) List() []string {
	if s == nil {
		return nil
	}
	list := make([]string, 0, s.set.Len())
	s.set.Scan(func(key string, _ struct{}) bool {
		list = append(list, key)
		return true
	})
	return list
}

// SuffixListParams specifies the path to a Public Suffix List file and
// whether to load private suffixes (e.g. blogspot.com) as well.
type SuffixListParams struct {
	FilePath             string
	IncludePrivateSuffix bool
}

// LoadSuffixes reads a table from a file in Public Suffix List format on fs.
//
// Blank lines and "//" comments are skipped. Suffixes after the
// "===BEGIN PRIVATE DOMAINS===" marker are loaded only if
// n.IncludePrivateSuffix is set. Both the punycode and the unicode form
// of internationalised suffixes are stored. Wildcard ("*.ck") and exception
// ("!www.ck") rules cannot be expressed as plain suffixes and are skipped.
func LoadSuffixes(fs afero.Fs, n SuffixListParams) (*Suffixes, error) {
	fd, err := fs.Open(n.FilePath)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer fd.Close()

	suffixes := &Suffixes{}
	fileScanner := bufio.NewScanner(fd)
	fileScanner.Split(bufio.ScanLines)
	isPrivateSuffix := false
	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if line == privateDomainsMarker {
			isPrivateSuffix = true
		}
		if len(line) == 0 || strings.HasPrefix(line, "//") {
			continue
		}
		if isPrivateSuffix && !n.IncludePrivateSuffix {
			continue
		}
		// rules end at the first whitespace
		rule := strings.Fields(line)[0]
		if strings.ContainsAny(rule, "*!") {
			log.Println("skipping wildcard or exception rule", rule)
			continue
		}
		suffix, err := idna.ToASCII(rule)
		if err != nil {
			// skip line if unable to convert to ascii
			log.Println(rule, "|", err)
			continue
		}
		suffixes.add(suffix)
		if suffix != rule {
			// add non-punycode version if it is different from punycode version
			suffixes.add(rule)
		}
	}
	if err := fileScanner.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return suffixes, nil
}

// PublicSuffixList is a SuffixTable backed by the Public Suffix List
// compiled into golang.org/x/net/publicsuffix.
//
// Only ICANN suffixes are reported unless IncludePrivateSuffix is set.
type PublicSuffixList struct {
	IncludePrivateSuffix bool
}

// Contains reports whether suffix is exactly a public suffix.
func (l PublicSuffixList) Contains(suffix string) bool {
	if suffix == "" {
		return false
	}
	ps, icann := publicsuffix.PublicSuffix(suffix)
	if ps != suffix {
		return false
	}
	// Unlisted single labels match the implicit "*" rule and are never ICANN.
	return icann || (l.IncludePrivateSuffix && strings.IndexByte(ps, '.') != -1)
}
