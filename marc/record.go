package marc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Record maps tags to their field occurrences, in occurrence order.
// Tags are opaque pattern-matchable strings; in MARC-in-JSON they are
// the three-digit field number plus two indicator characters.
type Record map[string][]Field

// Append queues occurrences under tag, preserving order.
func (r Record) Append(tag string, fields ...Field) {
	r[tag] = append(r[tag], fields...)
}

// Tags returns the record's tags in sorted order. Transformation
// drivers iterate in this order, which is what makes cross-field
// side effects deterministic (500 before 502, and so on).
func (r Record) Tags() []string {
	return slices.Sorted(maps.Keys(r))
}

func (r Record) Clone() Record {
	res := make(Record, len(r))
	for tag, fields := range r {
		cp := make([]Field, len(fields))
		for i, f := range fields {
			cp[i] = f.Clone()
		}
		res[tag] = cp
	}
	return res
}

// MarshalJSON emits a single occurrence as a bare object and repeated
// occurrences as an array, matching the shape MARC-in-JSON sources
// use.
func (r Record) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r))
	for tag, fields := range r {
		switch len(fields) {
		case 0:
		case 1:
			obj[tag] = fields[0]
		default:
			obj[tag] = fields
		}
	}
	return json.Marshal(obj)
}

func (r *Record) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return err
	}
	rec, err := FromAny(obj)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// FromAny builds a Record from a generically decoded document (the
// output of a JSON or YAML unmarshal into map[string]any).
func FromAny(obj map[string]any) (Record, error) {
	rec := make(Record, len(obj))
	for tag, x := range obj {
		switch t := x.(type) {
		case map[string]any:
			f, err := fieldFromAny(t)
			if err != nil {
				return nil, fmt.Errorf("tag %q: %w", tag, err)
			}
			rec[tag] = []Field{f}
		case []any:
			fields := make([]Field, 0, len(t))
			for _, e := range t {
				m, ok := e.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("tag %q: occurrence is %T, not an object", tag, e)
				}
				f, err := fieldFromAny(m)
				if err != nil {
					return nil, fmt.Errorf("tag %q: %w", tag, err)
				}
				fields = append(fields, f)
			}
			rec[tag] = fields
		default:
			return nil, fmt.Errorf("tag %q: unsupported field shape %T", tag, x)
		}
	}
	return rec, nil
}

func fieldFromAny(m map[string]any) (Field, error) {
	f := make(Field, len(m))
	for code, x := range m {
		var v Value
		if err := v.unmarshalAny(x); err != nil {
			return nil, fmt.Errorf("subfield %q: %w", code, err)
		}
		if !v.IsZero() {
			f[code] = v
		}
	}
	return f, nil
}

// ToAny converts the record to the generic form used for YAML
// encoding and for expression filters.
func (r Record) ToAny() map[string]any {
	obj := make(map[string]any, len(r))
	for tag, fields := range r {
		vals := make([]any, len(fields))
		for i, f := range fields {
			fm := make(map[string]any, len(f))
			for code, v := range f {
				if v.isList {
					ss := make([]any, len(v.many))
					for j, s := range v.many {
						ss[j] = s
					}
					fm[code] = ss
				} else {
					fm[code] = v.one
				}
			}
			vals[i] = fm
		}
		if len(vals) == 1 {
			obj[tag] = vals[0]
		} else {
			obj[tag] = vals
		}
	}
	return obj
}
