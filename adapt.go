package fasturi

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"braces.dev/errtrace"
)

// ToComponents converts v into Components.
//
// Supported inputs are Components, *Components, string, []byte,
// *url.URL and any fmt.Stringer, whose string form is parsed.
//
// Returns ErrUnsupportedInput for any other type.
func ToComponents(v any) (Components, error) {
	switch v := v.(type) {
	case Components:
		return v, nil
	case *Components:
		if v == nil {
			return Components{}, errUnsupported(v)
		}
		return *v, nil
	case string:
		return errtrace.Wrap2(Parse(v))
	case []byte:
		return errtrace.Wrap2(Parse(string(v)))
	case *url.URL:
		if v == nil {
			return Components{}, errUnsupported(v)
		}
		return errtrace.Wrap2(Parse(v.String()))
	case fmt.Stringer:
		return errtrace.Wrap2(Parse(v.String()))
	default:
		return Components{}, errUnsupported(v)
	}
}

// ToQuery converts v into a Query.
//
// Supported inputs are *Query and other Params (copied), string
// (decoded with ParseQuery), url.Values, map[string]string,
// map[string][]string and map[string]any. Map keys are visited in
// sorted order since Go maps have none. In map[string]any, nil values
// are skipped, []string values give one entry per element, and strings,
// booleans and numbers are formatted as text.
//
// Returns ErrUnsupportedInput for any other type, including unsupported
// map[string]any values.
func ToQuery(v any) (*Query, error) {
	switch v := v.(type) {
	case *Query:
		if v == nil {
			return nil, errUnsupported(v)
		}
		return v.Clone(), nil
	case Params:
		q := NewQuery()
		for k, val := range v.All() {
			q.Append(k, val)
		}
		return q, nil
	case string:
		return errtrace.Wrap2(ParseQuery(v))
	case url.Values:
		return multiValueQuery(v), nil
	case map[string][]string:
		return multiValueQuery(v), nil
	case map[string]string:
		q := NewQuery()
		for _, k := range sortedKeys(v) {
			q.Append(k, v[k])
		}
		return q, nil
	case map[string]any:
		q := NewQuery()
		for _, k := range sortedKeys(v) {
			if err := appendAny(q, k, v[k]); err != nil {
				return nil, errtrace.Wrap(err)
			}
		}
		return q, nil
	default:
		return nil, errUnsupported(v)
	}
}

func multiValueQuery(m map[string][]string) *Query {
	q := NewQuery()
	for _, k := range sortedKeys(m) {
		for _, val := range m[k] {
			q.Append(k, val)
		}
	}
	return q
}

func appendAny(q *Query, key string, v any) error {
	switch v := v.(type) {
	case nil:
	case string:
		q.Append(key, v)
	case []string:
		for _, s := range v {
			q.Append(key, s)
		}
	case bool:
		q.Append(key, strconv.FormatBool(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		q.Append(key, fmt.Sprint(v))
	case fmt.Stringer:
		q.Append(key, v.String())
	default:
		return errtrace.Wrap(fmt.Errorf("%w: value of %q is %T", ErrUnsupportedInput, key, v))
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
