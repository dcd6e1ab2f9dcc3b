package fasturi

import (
	"strings"
	"testing"
)

type indexAnyASCIITest struct {
	s        string
	set      asciiSet
	expected int
}

var indexAnyASCIITests = []indexAnyASCIITest{
	{"http://example.com", endOfSchemeDelimitersSet, 4},
	{"example.com/path", endOfAuthorityDelimitersSet, 11},
	{"example.com?q", endOfAuthorityDelimitersSet, 11},
	{"example.com", endOfAuthorityDelimitersSet, 11},
	{"", endOfPathDelimitersSet, 0},
	{"/a/b#frag?not-query", endOfPathDelimitersSet, 4},
	{"水/?", endOfAuthorityDelimitersSet, len("水")},
	{"\xff\x80", endOfSchemeDelimitersSet, 2},
}

func TestIndexAnyASCII(t *testing.T) {
	for _, test := range indexAnyASCIITests {
		if output := indexAnyASCII(test.s, test.set); output != test.expected {
			t.Errorf("indexAnyASCII(%q) = %d, want %d", test.s, output, test.expected)
		}
	}
}

func TestASCIISetContains(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := strings.IndexByte(endOfSchemeDelimiters, byte(c)) != -1
		if got := endOfSchemeDelimitersSet.contains(byte(c)); got != want {
			t.Errorf("contains(%q) = %t, want %t", rune(c), got, want)
		}
		want = c >= '0' && c <= '9'
		if got := numericSet.contains(byte(c)); got != want {
			t.Errorf("numericSet.contains(%q) = %t, want %t", rune(c), got, want)
		}
	}
}

func TestJoinLabels(t *testing.T) {
	if output := joinLabels([]string{"sub", "example", "co", "uk"}); output != "sub.example.co.uk" {
		t.Errorf("Output %q not equal to expected %q", output, "sub.example.co.uk")
	}
	if output := joinLabels(nil); output != "" {
		t.Errorf("Output %q not equal to expected %q", output, "")
	}
}
