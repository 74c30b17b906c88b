package marc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// Value is one subfield value: a single string or an ordered list of
// strings. The zero Value behaves like an absent subfield.
type Value struct {
	one    string
	many   []string
	isList bool
}

func String(s string) Value {
	return Value{one: s}
}

func Strings(ss ...string) Value {
	return Value{many: ss, isList: true}
}

func (v Value) IsZero() bool {
	if v.isList {
		return len(v.many) == 0
	}
	return v.one == ""
}

// List normalizes to a list: a scalar becomes a one-element list, a
// list is returned unchanged, an absent value becomes nil.
func (v Value) List() []string {
	if v.isList {
		return v.many
	}
	if v.one == "" {
		return nil
	}
	return []string{v.one}
}

// Single collapses to a scalar: the only element of a one-element
// list, the empty string when absent. A multi-element list collapses
// to its first element; ambiguous multi-valued input is not an error.
func (v Value) Single() string {
	if !v.isList {
		return v.one
	}
	if len(v.many) == 0 {
		return ""
	}
	return v.many[0]
}

// Int parses the collapsed value as an integer. Non-numeric or absent
// input reports false, never an error.
func (v Value) Int() (int, bool) {
	s := v.Single()
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal compares normalized content: a scalar equals its one-element
// list form. Used by go-cmp in tests and by round-trip checks.
func (v Value) Equal(o Value) bool {
	return slices.Equal(v.List(), o.List())
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.many)
	}
	return json.Marshal(v.one)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}
	return v.unmarshalAny(x)
}

func (v *Value) unmarshalAny(x any) error {
	switch t := x.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = String(t)
	case float64:
		*v = String(formatNumber(t))
	case json.Number:
		*v = String(t.String())
	case int:
		*v = String(strconv.Itoa(t))
	case int64:
		*v = String(strconv.FormatInt(t, 10))
	case uint64:
		*v = String(strconv.FormatUint(t, 10))
	case []any:
		ss := make([]string, 0, len(t))
		for _, e := range t {
			var ev Value
			if err := ev.unmarshalAny(e); err != nil {
				return err
			}
			ss = append(ss, ev.one)
		}
		*v = Strings(ss...)
	default:
		return fmt.Errorf("marc: unsupported subfield value %T", x)
	}
	return nil
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
