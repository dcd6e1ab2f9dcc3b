package fasturi

import (
	"strings"

	"braces.dev/errtrace"
)

// Resolve resolves the reference ref against base and returns the target.
//
// The checks run in a fixed order: a reference with a scheme replaces
// everything; then one with an authority keeps only the base scheme; then
// an empty path keeps the base path (and the base query, unless ref has
// one); then an absolute path replaces the base path; otherwise the path
// is merged with the base path up to and including its last "/".
// Dot segments are removed from every path taken from or merged with ref.
//
// The fragment always comes from ref; the base fragment is never inherited.
// The result is never a URN.
func Resolve(base, ref Components) Components {
	var target Components

	switch {
	case ref.Scheme.IsSet():
		target.Scheme = ref.Scheme
		target.Authority = ref.Authority
		target.UserInfo = ref.UserInfo
		target.Host = ref.Host
		target.Port = ref.Port
		target.Path = normalizedPath(ref.Path.Or(""))
		target.Query = ref.Query
	case ref.Authority.IsSet():
		target.Scheme = base.Scheme
		target.Authority = ref.Authority
		target.UserInfo = ref.UserInfo
		target.Host = ref.Host
		target.Port = ref.Port
		target.Path = normalizedPath(ref.Path.Or(""))
		target.Query = ref.Query
	default:
		target.Scheme = base.Scheme
		target.Authority = base.Authority
		target.UserInfo = base.UserInfo
		target.Host = base.Host
		target.Port = base.Port

		refPath := ref.Path.Or("")
		switch {
		case refPath == "":
			target.Path = base.Path
			if ref.Query.IsSet() {
				target.Query = ref.Query
			} else {
				target.Query = base.Query
			}
		case refPath[0] == '/':
			target.Path = normalizedPath(refPath)
			target.Query = ref.Query
		default:
			target.Path = normalizedPath(mergePaths(base.Path.Or(""), refPath))
			target.Query = ref.Query
		}
	}

	target.Fragment = ref.Fragment
	return target
}

// ResolveString parses base and ref and resolves ref against base.
func ResolveString(base, ref string) (Components, error) {
	b, err := Parse(base)
	if err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	r, err := Parse(ref)
	if err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	return Resolve(b, r), nil
}

// ResolveReference resolves ref against c. See Resolve.
func (c Components) ResolveReference(ref Components) Components {
	return Resolve(c, ref)
}

// mergePaths appends ref to the directory part of base,
// i.e. everything up to and including its last "/".
func mergePaths(base, ref string) string {
	return base[:strings.LastIndexByte(base, '/')+1] + ref
}

// normalizedPath removes dot segments from path.
// An empty result is reported as absent, like an empty parsed path.
func normalizedPath(path string) Optional[string] {
	if path = RemoveDotSegments(path); path == "" {
		return None[string]()
	}
	return Some(path)
}
