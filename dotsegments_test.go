package fasturi

import (
	"strings"
	"testing"
)

type removeDotSegmentsTest struct {
	path     string
	expected string
}

var removeDotSegmentsTests = []removeDotSegmentsTest{
	{"", ""},
	{"/", "/"},
	{".", ""},
	{"..", ""},
	{"/.", "/"},
	{"/..", "/"},
	{"./", ""},
	{"../", ""},
	{"./a", "a"},
	{"../a", "a"},
	{"../../a/b", "a/b"},
	{"/a/b/../c/./d", "/a/c/d"},
	{"/a/b/c/./../../g", "/a/g"},
	{"mid/content=5/../6", "mid/6"},
	{"/a/b/..", "/a/"},
	{"/a/b/.", "/a/b/"},
	{"/a/./b/", "/a/b/"},
	{"/../a", "/a"},
	{"/../../a/../..", "/"},
	{"a/..", "/"},
	{"a/../b", "/b"},
	{"/a/..b/.c", "/a/..b/.c"},
	{"/a/.../b", "/a/.../b"},
	{"//a/../b", "//b"},
	{"/a//../b", "/a/b"},
	{"/base/relative/path", "/base/relative/path"},
	{"/a/b/c/g;x=1/../y", "/a/b/c/y"},
}

func TestRemoveDotSegments(t *testing.T) {
	for _, test := range removeDotSegmentsTests {
		if output := RemoveDotSegments(test.path); output != test.expected {
			t.Errorf("RemoveDotSegments(%q) = %q, want %q", test.path, output, test.expected)
		}
	}
}

func TestRemoveDotSegmentsIdempotent(t *testing.T) {
	paths := []string{"a/./b/../../..//c", "./.././/..", "/./a/.././..//b/.", "..//./a"}
	for _, test := range removeDotSegmentsTests {
		paths = append(paths, test.path)
	}
	for _, path := range paths {
		once := RemoveDotSegments(path)
		if twice := RemoveDotSegments(once); twice != once {
			t.Errorf("RemoveDotSegments not idempotent on %q: %q then %q", path, once, twice)
		}
		for _, segment := range strings.Split(once, "/") {
			if segment == "." || segment == ".." {
				t.Errorf("RemoveDotSegments(%q) = %q still has a dot segment", path, once)
			}
		}
	}
}
