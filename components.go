// Package fasturi parses generic URI references into their components,
// renders components back to canonical strings, resolves relative
// references against a base, and extracts or replaces the subdomain of
// a hostname using a table of known top level domain suffixes.
//
// All operations are pure functions over immutable values. Transformations
// never modify their input; they return a new Components value instead.
package fasturi

import (
	"fmt"
	"net/netip"
	"strings"
)

// Optional holds a value that may be absent.
//
// The zero value is absent. An Optional set to the zero value of T
// (e.g. Some("")) is present, which lets an empty host be told apart
// from a missing authority.
type Optional[T comparable] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T comparable](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T comparable]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsSet reports whether the value is present.
func (o Optional[T]) IsSet() bool { return o.ok }

// Or returns the value if present, otherwise def.
func (o Optional[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Equal reports whether o and other are both absent, or both present with equal values.
func (o Optional[T]) Equal(other Optional[T]) bool { return o == other }

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.ok {
		return "<none>"
	}
	return fmt.Sprint(o.value)
}

// UserInfo is the userinfo subcomponent of an authority.
type UserInfo struct {
	Username, Password Optional[string]
}

// Components contains the components of a URI reference.
//
// Components is a value type: copying it yields an independent value,
// and no method modifies the receiver.
type Components struct {
	Scheme    Optional[string]
	Authority Optional[string]
	UserInfo  Optional[UserInfo]
	Host      Optional[string]
	Port      Optional[int]
	Path      Optional[string]
	Query     Optional[string]
	Fragment  Optional[string]

	// IsURN makes the renderer treat Path as an opaque URN namestring.
	// Parse derives it from Scheme; for literal values the caller sets it.
	IsURN bool
}

// HostType indicates whether the host of a Components value
// is a HostName, an IPv4 address, an IPv6 address or absent.
type HostType int

// NoHost, HostName, IPv4 and IPv6 indicate whether the host
// is absent, a hostname, an IPv4 address or an IPv6 address.
const (
	NoHost HostType = iota
	HostName
	IPv4
	IPv6
)

func (t HostType) String() string {
	switch t {
	case HostName:
		return "hostname"
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "none"
	}
}

// HostType classifies the host. An empty host is reported as NoHost.
// Only the shape of the literal is checked; it is not resolved.
func (c Components) HostType() HostType {
	host, ok := c.Host.Get()
	if !ok || host == "" {
		return NoHost
	}
	addr, err := netip.ParseAddr(host)
	switch {
	case err != nil:
		return HostName
	case addr.Is4():
		return IPv4
	default:
		return IPv6
	}
}

// isURNScheme reports whether scheme names a URN.
func isURNScheme(scheme string) bool { return strings.EqualFold(scheme, "urn") }

// WithPath returns a copy of c with its path set to path.
func (c Components) WithPath(path string) Components {
	c.Path = Some(path)
	return c
}

// WithQuery returns a copy of c with its raw query set to query.
func (c Components) WithQuery(query string) Components {
	c.Query = Some(query)
	return c
}

// WithHost returns a copy of c with its host set to host.
// The authority, if present, is rebuilt to carry the new host.
//
// Returns ErrMissingHost if c has no host to replace.
func (c Components) WithHost(host string) (Components, error) {
	if !c.Host.IsSet() {
		return Components{}, errMissingHost("set host")
	}
	c.Host = Some(host)
	if c.Authority.IsSet() {
		c.Authority = Some(renderAuthority(c.UserInfo, host, c.Port))
	}
	return c, nil
}
