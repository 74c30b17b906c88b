package convert

import "reflect"

// Policy is the accumulation policy applied when a rule's write meets
// a value already present under the same key.
type Policy int

const (
	// Append concatenates list values, preserving order. A write
	// onto an absent key just stores the new list.
	Append Policy = iota
	// Merge combines map values key-wise; the later write wins per
	// key.
	Merge
	// Set replaces the previous value wholesale. Rules using Set on
	// shared keys read the current value first and return a merged
	// object, so the write is still non-destructive.
	Set
)

func (p Policy) String() string {
	switch p {
	case Append:
		return "append"
	case Merge:
		return "merge"
	case Set:
		return "set"
	default:
		return "<unknown policy>"
	}
}

// isNil reports whether a rule returned nothing: a nil interface or
// a typed nil slice, map or pointer. Empty non-nil containers are
// real values and get stored.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// accumulate merges a new value into an old one per policy. Values
// whose shape does not fit the policy (non-slice under Append,
// non-map under Merge) degrade to Set semantics.
func accumulate(old, val any, p Policy) any {
	if old == nil || p == Set {
		return val
	}
	switch p {
	case Append:
		ov, nv := reflect.ValueOf(old), reflect.ValueOf(val)
		if ov.Kind() != reflect.Slice || nv.Kind() != reflect.Slice || ov.Type() != nv.Type() {
			return val
		}
		res := reflect.MakeSlice(ov.Type(), 0, ov.Len()+nv.Len())
		res = reflect.AppendSlice(res, ov)
		res = reflect.AppendSlice(res, nv)
		return res.Interface()
	case Merge:
		om, nm := reflect.ValueOf(old), reflect.ValueOf(val)
		if om.Kind() != reflect.Map || nm.Kind() != reflect.Map || om.Type() != nm.Type() {
			return val
		}
		res := reflect.MakeMapWithSize(om.Type(), om.Len()+nm.Len())
		for it := om.MapRange(); it.Next(); {
			res.SetMapIndex(it.Key(), it.Value())
		}
		for it := nm.MapRange(); it.Next(); {
			res.SetMapIndex(it.Key(), it.Value())
		}
		return res.Interface()
	}
	return val
}
