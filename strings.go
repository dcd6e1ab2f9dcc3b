package fasturi

import "strings"

const numbers string = "0123456789"

// Characters terminating each component of the generic URI grammar.
const (
	endOfSchemeDelimiters    string = ":/?#"
	endOfAuthorityDelimiters string = "/?#"
	endOfPathDelimiters      string = "?#"
)

var (
	endOfSchemeDelimitersSet    asciiSet = makeASCIISet(endOfSchemeDelimiters)
	endOfAuthorityDelimitersSet asciiSet = makeASCIISet(endOfAuthorityDelimiters)
	endOfPathDelimitersSet      asciiSet = makeASCIISet(endOfPathDelimiters)
	numericSet                  asciiSet = makeASCIISet(numbers)
)

// asciiSet is a 32-byte value, where each bit represents the presence of a
// given ASCII character in the set. The 128-bits of the lower 16 bytes,
// starting with the least-significant bit of the lowest word to the
// most-significant bit of the highest word, map to the full range of all
// 128 ASCII characters. The upper 16 bytes are zeroed, so any byte of a
// multi-byte UTF-8 sequence is reported as not in the set.
type asciiSet [8]uint32

// makeASCIISet creates a set of ASCII characters.
//
// Similar to strings.makeASCIISet but skips input validation.
func makeASCIISet(chars string) (as asciiSet) {
	// all characters in chars are expected to be valid ASCII characters
	for _, c := range chars {
		as[c/32] |= 1 << (c % 32)
	}
	return as
}

// contains reports whether c is inside the set.
func (as *asciiSet) contains(c byte) bool {
	return (as[c/32] & (1 << (c % 32))) != 0
}

// indexAnyASCII returns the index of the first byte of s found in as,
// or len(s) if there is none.
//
// Unlike strings.IndexAny, the end of s counts as a match, which is
// what every component scanner wants.
func indexAnyASCII(s string, as asciiSet) int {
	for i := 0; i < len(s); i++ {
		if as.contains(s[i]) {
			return i
		}
	}
	return len(s)
}

// parsePort parses s as a base-10 port number.
//
// Anything other than a non-empty run of digits that fits in an int
// yields an absent port.
func parsePort(s string) Optional[int] {
	if len(s) == 0 {
		return None[int]()
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !numericSet.contains(s[i]) {
			return None[int]()
		}
		d := int(s[i] - '0')
		if n > (maxInt-d)/10 {
			return None[int]()
		}
		n = n*10 + d
	}
	return Some(n)
}

const maxInt = int(^uint(0) >> 1)

// joinLabels joins labels with the label separator.
func joinLabels(labels []string) string {
	return strings.Join(labels, ".")
}
