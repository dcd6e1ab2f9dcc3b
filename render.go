package fasturi

import (
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Render returns the string form of c.
//
// Render never fails; absent components contribute nothing. For any
// canonical string s accepted by Parse, Render(Parse(s)) == s.
func Render(c Components) string {
	var sb strings.Builder
	c.RenderTo(&sb) //nolint:errcheck
	return sb.String()
}

// String returns the string form of c. See Render.
func (c Components) String() string { return Render(c) }

// RenderTo writes the string form of c to w.
func (c Components) RenderTo(w io.Writer) (int, error) {
	var sb strings.Builder

	if scheme, ok := c.Scheme.Get(); ok {
		sb.WriteString(scheme)
		sb.WriteByte(':')
	}

	if c.IsURN {
		// URN namestrings are opaque and never carry an authority
		sb.WriteString(c.Path.Or(""))
	} else {
		if host, ok := c.Host.Get(); ok {
			sb.WriteString("//")
			writeAuthority(&sb, c.UserInfo, host, c.Port)
		}
		if path := c.Path.Or(""); path != "" {
			if out := sb.String(); out != "" && !strings.HasSuffix(out, "/") && path[0] != '/' {
				sb.WriteByte('/')
			}
			sb.WriteString(path)
		}
	}

	if query, ok := c.Query.Get(); ok {
		sb.WriteByte('?')
		sb.WriteString(query)
	}
	if fragment, ok := c.Fragment.Get(); ok {
		sb.WriteByte('#')
		sb.WriteString(fragment)
	}

	return errtrace.Wrap2(io.WriteString(w, sb.String()))
}

// MarshalText implements encoding.TextMarshaler.
func (c Components) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Components) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		*c = Components{}
		return errtrace.Wrap(err)
	}
	*c = parsed
	return nil
}

// renderAuthority returns the authority built from userInfo, host and port,
// without the leading "//".
func renderAuthority(userInfo Optional[UserInfo], host string, port Optional[int]) string {
	var sb strings.Builder
	writeAuthority(&sb, userInfo, host, port)
	return sb.String()
}

func writeAuthority(sb *strings.Builder, userInfo Optional[UserInfo], host string, port Optional[int]) {
	if ui, ok := userInfo.Get(); ok {
		if username, ok := ui.Username.Get(); ok {
			sb.WriteString(username)
			if password, ok := ui.Password.Get(); ok {
				sb.WriteByte(':')
				sb.WriteString(password)
			}
		}
		sb.WriteByte('@')
	}

	// Any colon in a host means an IPv6 literal; the address itself is not validated.
	if strings.IndexByte(host, ':') != -1 {
		sb.WriteByte('[')
		sb.WriteString(host)
		sb.WriteByte(']')
	} else {
		sb.WriteString(host)
	}

	if p, ok := port.Get(); ok {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p))
	}
}
