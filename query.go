package fasturi

import (
	"fmt"
	"iter"
	"net/url"
	"strings"

	"braces.dev/errtrace"
)

// Params is an ordered multi-map of query parameters.
//
// Keys may hold several values, and entries keep their insertion order.
// Keys are case-sensitive.
type Params interface {
	// Get returns the first value associated with key.
	Get(key string) (string, bool)
	// GetAll returns every value associated with key, in order.
	GetAll(key string) []string
	// Has reports whether key has at least one value.
	Has(key string) bool
	// Set replaces every value of key with value. The entry takes the
	// position of the first existing one, or is appended.
	Set(key, value string)
	// Append adds an entry for key after all existing entries.
	Append(key, value string)
	// Delete removes every entry of key.
	Delete(key string)
	// Len returns the number of entries.
	Len() int
	// All iterates over the entries in insertion order.
	All() iter.Seq2[string, string]
}

// MergeMode selects how MergeQuery treats keys present in both inputs.
type MergeMode int

const (
	// Replace drops every value of a key from the first input
	// when the second input has that key.
	Replace MergeMode = iota
	// Append keeps the values of both inputs.
	Append
)

func (m MergeMode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("MergeMode(%d)", int(m))
	}
}

// MergeQuery returns a new Query with the entries of a followed by the
// entries of b. Neither input is modified. A nil input counts as empty.
//
// In Replace mode, keys of b are removed from a first, so b's values win;
// duplicate keys within b are all kept. In Append mode nothing is removed.
func MergeQuery(a, b Params, mode MergeMode) *Query {
	merged := NewQuery()
	if a != nil {
		for k, v := range a.All() {
			merged.Append(k, v)
		}
	}
	if b == nil {
		return merged
	}
	if mode == Replace {
		for k := range b.All() {
			merged.Delete(k)
		}
	}
	for k, v := range b.All() {
		merged.Append(k, v)
	}
	return merged
}

// Param is a single query parameter.
type Param struct {
	Key, Value string
}

// Query is the Params implementation backed by a slice of entries.
// The zero value is an empty query ready to use. A nil *Query reads as
// empty; only Set, Append and Delete need a non-nil receiver.
type Query struct {
	params []Param
}

var _ Params = (*Query)(nil)

// NewQuery returns a query holding params, in order.
func NewQuery(params ...Param) *Query {
	q := &Query{params: make([]Param, 0, len(params))}
	q.params = append(q.params, params...)
	return q
}

// Get implements Params.
func (q *Query) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	for _, p := range q.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// GetAll implements Params.
func (q *Query) GetAll(key string) []string {
	if q == nil {
		return nil
	}
	var vals []string
	for _, p := range q.params {
		if p.Key == key {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// Has implements Params.
func (q *Query) Has(key string) bool {
	_, ok := q.Get(key)
	return ok
}

// Set implements Params.
func (q *Query) Set(key, value string) {
	for i, p := range q.params {
		if p.Key == key {
			q.params[i].Value = value
			q.params = append(q.params[:i+1], removeKey(q.params[i+1:], key)...)
			return
		}
	}
	q.Append(key, value)
}

// Append implements Params.
func (q *Query) Append(key, value string) {
	q.params = append(q.params, Param{Key: key, Value: value})
}

// Delete implements Params.
func (q *Query) Delete(key string) {
	q.params = removeKey(q.params, key)
}

// Len implements Params.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// All implements Params.
func (q *Query) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if q == nil {
			return
		}
		for _, p := range q.params {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Params returns a copy of the entries in order.
func (q *Query) Params() []Param {
	if q == nil {
		return nil
	}
	params := make([]Param, len(q.params))
	copy(params, q.params)
	return params
}

// Clone returns a deep copy of q.
func (q *Query) Clone() *Query {
	if q == nil {
		return NewQuery()
	}
	return NewQuery(q.params...)
}

// Encode returns the query in "application/x-www-form-urlencoded" form,
// entries in insertion order.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// String returns the encoded query.
func (q *Query) String() string { return q.Encode() }

// removeKey filters the entries of key out of params in place.
func removeKey(params []Param, key string) []Param {
	kept := params[:0]
	for _, p := range params {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	return kept
}

// ParseQuery decodes a raw query string, keeping the order of entries.
// A leading "?" is ignored, as are empty entries between separators.
//
// Returns ErrInvalidQuery if a key or value has an invalid percent-encoding.
func ParseQuery(raw string) (*Query, error) {
	q := NewQuery()
	raw = strings.TrimPrefix(raw, "?")
	for raw != "" {
		var entry string
		entry, raw, _ = strings.Cut(raw, "&")
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("%w: %w", ErrInvalidQuery, err))
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("%w: %w", ErrInvalidQuery, err))
		}
		q.Append(k, v)
	}
	return q, nil
}

// MergeQuery returns a copy of c whose query is the merge of its own
// query with params. See MergeQuery.
//
// Returns ErrInvalidQuery if the existing query cannot be decoded.
func (c Components) MergeQuery(params Params, mode MergeMode) (Components, error) {
	current, err := ParseQuery(c.Query.Or(""))
	if err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	merged := MergeQuery(current, params, mode)
	if merged.Len() == 0 {
		c.Query = None[string]()
		return c, nil
	}
	return c.WithQuery(merged.Encode()), nil
}
