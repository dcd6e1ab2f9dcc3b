package fasturi

import (
	"strings"

	"braces.dev/errtrace"
)

// Parse splits raw into its components following the generic URI syntax
//
//	[scheme ":"] ["//" authority] path ["?" query] ["#" fragment]
//
// Components are not decoded or validated beyond what is needed to split
// them. An empty path is reported as absent; an empty query or fragment is
// present when its delimiter appears in raw.
//
// Returns ErrMalformedURI if the authority contains unbalanced or misplaced
// square brackets.
func Parse(raw string) (Components, error) {
	var c Components
	rest := raw

	if scheme, after, ok := scanScheme(rest); ok {
		c.Scheme = Some(scheme)
		c.IsURN = isURNScheme(scheme)
		rest = after
	}

	if authority, after, ok := scanAuthority(rest); ok {
		userInfo, host, port, err := splitAuthority(authority)
		if err != nil {
			return Components{}, errMalformed(raw, err)
		}
		c.Authority = Some(authority)
		c.UserInfo = userInfo
		c.Host = Some(host)
		c.Port = port
		rest = after
	}

	path, rest := scanPath(rest)
	if path != "" {
		c.Path = Some(path)
	}

	query, rest, ok := scanQuery(rest)
	if ok {
		c.Query = Some(query)
	}

	if fragment, ok := scanFragment(rest); ok {
		c.Fragment = Some(fragment)
	}

	return c, nil
}

// scanScheme consumes a non-empty scheme and its trailing colon from the start of s.
func scanScheme(s string) (scheme, rest string, ok bool) {
	i := indexAnyASCII(s, endOfSchemeDelimitersSet)
	if i == 0 || i == len(s) || s[i] != ':' {
		return "", s, false
	}
	return s[:i], s[i+1:], true
}

// scanAuthority consumes "//" and the authority following it from the start of s.
func scanAuthority(s string) (authority, rest string, ok bool) {
	if !strings.HasPrefix(s, "//") {
		return "", s, false
	}
	s = s[2:]
	i := indexAnyASCII(s, endOfAuthorityDelimitersSet)
	return s[:i], s[i:], true
}

// scanPath consumes everything up to the query or fragment.
func scanPath(s string) (path, rest string) {
	i := indexAnyASCII(s, endOfPathDelimitersSet)
	return s[:i], s[i:]
}

// scanQuery consumes "?" and the query following it from the start of s.
func scanQuery(s string) (query, rest string, ok bool) {
	if len(s) == 0 || s[0] != '?' {
		return "", s, false
	}
	s = s[1:]
	if i := strings.IndexByte(s, '#'); i != -1 {
		return s[:i], s[i:], true
	}
	return s, "", true
}

// scanFragment consumes "#" and the rest of s.
func scanFragment(s string) (fragment string, ok bool) {
	if len(s) == 0 || s[0] != '#' {
		return "", false
	}
	return s[1:], true
}

// splitAuthority decomposes authority into userinfo, host and port.
//
// The userinfo is split off at the last '@' first, since neither a host
// nor an IPv6 literal may contain one. What remains is either a bracketed
// IPv6 literal with an optional port, or a host split from its port at
// the last ':'.
func splitAuthority(authority string) (userInfo Optional[UserInfo], host string, port Optional[int], err error) {
	hostPort := authority
	if atIdx := strings.LastIndexByte(authority, '@'); atIdx != -1 {
		username, password, hasPassword := strings.Cut(authority[:atIdx], ":")
		ui := UserInfo{Username: Some(username)}
		if hasPassword {
			ui.Password = Some(password)
		}
		userInfo = Some(ui)
		hostPort = authority[atIdx+1:]
	}

	if strings.HasPrefix(hostPort, "[") {
		closingSquareBracketIdx := strings.IndexByte(hostPort, ']')
		switch {
		case closingSquareBracketIdx == -1:
			return userInfo, "", port, errtrace.New("incomplete square bracket pair")
		case closingSquareBracketIdx == 1:
			return userInfo, "", port, errtrace.New("empty IPv6 literal")
		case strings.IndexByte(hostPort[1:closingSquareBracketIdx], '[') != -1:
			return userInfo, "", port, errtrace.New("nested opening square bracket")
		}
		host = hostPort[1:closingSquareBracketIdx]
		afterHost := hostPort[closingSquareBracketIdx+1:]
		if len(afterHost) != 0 {
			if afterHost[0] != ':' {
				return userInfo, "", port, errtrace.New("invalid trailing characters after IPv6 literal")
			}
			port = parsePort(afterHost[1:])
		}
		return userInfo, host, port, nil
	}

	if strings.ContainsAny(hostPort, "[]") {
		return userInfo, "", port, errtrace.New("square bracket outside of IPv6 literal")
	}

	host = hostPort
	if colonIdx := strings.LastIndexByte(hostPort, ':'); colonIdx != -1 {
		host = hostPort[:colonIdx]
		port = parsePort(hostPort[colonIdx+1:])
	}
	return userInfo, host, port, nil
}
