package fasturi

import (
	"fmt"

	"braces.dev/errtrace"
)

// Error is a string type that implements the error interface.
// Sentinel errors of this package are constants of this type;
// compare against them with errors.Is.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrMalformedURI is returned when a string cannot be decomposed by the generic URI grammar.
	ErrMalformedURI Error = "malformed URI"
	// ErrMissingHost is returned when an operation needs a host and none is present.
	ErrMissingHost Error = "missing host"
	// ErrUnknownTLD is returned when no suffix of a hostname is found in the suffix table.
	ErrUnknownTLD Error = "top-level domain not found in host"
	// ErrUnsupportedInput is returned when an adapter is given a value of unsupported type.
	ErrUnsupportedInput Error = "unsupported input"
	// ErrInvalidQuery is returned when a raw query string cannot be decoded.
	ErrInvalidQuery Error = "invalid query"
)

func errMalformed(raw string, cause error) error {
	return errtrace.Wrap(fmt.Errorf("%w %q: %w", ErrMalformedURI, raw, cause))
}

func errMissingHost(op string) error {
	return errtrace.Wrap(fmt.Errorf("%s: %w", op, ErrMissingHost))
}

func errUnknownTLD(host string) error {
	return errtrace.Wrap(fmt.Errorf("%w: %q", ErrUnknownTLD, host))
}

func errUnsupported(v any) error {
	return errtrace.Wrap(fmt.Errorf("%w: %T", ErrUnsupportedInput, v))
}
